package model

// AdmissionDocument is one required or optional document for an admission
// route, ordered within its admission type by DisplayOrder.
type AdmissionDocument struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	AdmissionType string `gorm:"size:50;not null" json:"admission_type"`
	DocumentName  string `gorm:"size:200;not null" json:"document_name"`
	IsRequired    bool   `gorm:"default:true" json:"is_required"`
	DisplayOrder  int    `gorm:"default:0" json:"display_order"`
}
