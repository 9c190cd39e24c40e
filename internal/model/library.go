package model

type LibraryBook struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Category  string `gorm:"size:100;not null" json:"category"`
	BookCount int    `gorm:"default:0" json:"book_count"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}

// LibraryTiming is a singleton: at most one row exists.
type LibraryTiming struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	IssueStartTime  string `gorm:"size:10;not null" json:"issue_start_time"`
	IssueEndTime    string `gorm:"size:10;not null" json:"issue_end_time"`
	ReturnStartTime string `gorm:"size:10;not null" json:"return_start_time"`
	ReturnEndTime   string `gorm:"size:10;not null" json:"return_end_time"`
	LunchBreakStart string `gorm:"size:10;not null" json:"lunch_break_start"`
	LunchBreakEnd   string `gorm:"size:10;not null" json:"lunch_break_end"`
}
