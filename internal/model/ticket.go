package model

import "time"

const (
	TicketStatusOpen     = "Open"
	TicketStatusResolved = "Resolved"
)

// HelpTicket is a student support request created from the chatbot widget.
// Status moves Open -> Resolved; resolving stamps ResolvedAt.
type HelpTicket struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	StudentName string     `gorm:"size:200;not null" json:"student_name"`
	Contact     string     `gorm:"size:100;not null" json:"contact"`
	Topic       string     `gorm:"size:100" json:"topic"`
	QueryText   string     `gorm:"column:query;type:text;not null" json:"query"`
	PDFFilename string     `gorm:"size:255" json:"pdf_filename"`
	PDFExcerpt  string     `gorm:"type:text" json:"pdf_excerpt"`
	Status      string     `gorm:"size:50;default:Open" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}
