package model

type Scholarship struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	ScholarshipName    string `gorm:"size:200;not null" json:"scholarship_name"`
	Category           string `gorm:"size:100;not null" json:"category"`
	Amount             string `gorm:"size:100;not null" json:"amount"`
	Eligibility        string `gorm:"type:text;not null" json:"eligibility"`
	DocumentsRequired  string `gorm:"type:text;not null" json:"documents_required"`
	IsActive           bool   `gorm:"default:true" json:"is_active"`
}
