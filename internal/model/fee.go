package model

import "time"

// FeeStructure holds the per-category admission fee breakdown. TotalFees is
// the sum of the seven components unless an explicit total was supplied.
type FeeStructure struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Category              string    `gorm:"size:50;not null" json:"category"`
	ProspectusFees        float64   `gorm:"default:0" json:"prospectus_fees"`
	TuitionFees           float64   `gorm:"default:0" json:"tuition_fees"`
	DevelopmentFees       float64   `gorm:"default:0" json:"development_fees"`
	TrainingPlacementFees float64   `gorm:"default:0" json:"training_placement_fees"`
	ISTEFees              float64   `gorm:"default:0" json:"iste_fees"`
	LibraryLabFees        float64   `gorm:"default:0" json:"library_lab_fees"`
	StudentInsurance      float64   `gorm:"default:0" json:"student_insurance"`
	TotalFees             float64   `gorm:"default:0" json:"total_fees"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ComponentSum returns the total of the seven fee components.
func (f FeeStructure) ComponentSum() float64 {
	return f.ProspectusFees +
		f.TuitionFees +
		f.DevelopmentFees +
		f.TrainingPlacementFees +
		f.ISTEFees +
		f.LibraryLabFees +
		f.StudentInsurance
}
