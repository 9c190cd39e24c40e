package model

import "time"

// StudentFeePayment is one fee receipt. RemainingAmount defaults to
// total minus paid when not supplied explicitly.
type StudentFeePayment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	StudentName     string    `gorm:"size:200;not null" json:"student_name"`
	StudentID       string    `gorm:"size:50;not null;index" json:"student_id"`
	AdmissionYear   string    `gorm:"size:10;not null" json:"admission_year"`
	Category        string    `gorm:"size:50;not null" json:"category"`
	TotalFees       float64   `gorm:"default:0" json:"total_fees"`
	PaidAmount      float64   `gorm:"default:0" json:"paid_amount"`
	RemainingAmount float64   `gorm:"default:0" json:"remaining_amount"`
	PaymentDate     time.Time `json:"payment_date"`
	ReceiptNumber   string    `gorm:"size:100;not null" json:"receipt_number"`
	Semester        string    `gorm:"size:20;not null" json:"semester"`
}
