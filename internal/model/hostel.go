package model

type HostelFacility struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FacilityName string `gorm:"size:200;not null" json:"facility_name"`
	IsAvailable  bool   `gorm:"default:true" json:"is_available"`
}

// HostelFeeSchedule is a singleton holding the hostel and mess charges.
// Kept separate from the facility list so the fee lines do not depend on
// whichever facility row happens to come first.
type HostelFeeSchedule struct {
	ID                    uint    `gorm:"primaryKey" json:"id"`
	HostelFeesPerSemester float64 `gorm:"default:0" json:"hostel_fees_per_semester"`
	MessFeesPerMonth      float64 `gorm:"default:0" json:"mess_fees_per_month"`
}
