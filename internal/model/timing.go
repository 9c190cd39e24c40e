package model

// CollegeTiming is a singleton: at most one row exists.
type CollegeTiming struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	OpeningTime     string `gorm:"size:10;not null" json:"opening_time"`
	ClosingTime     string `gorm:"size:10;not null" json:"closing_time"`
	SaturdayOpening string `gorm:"size:10;not null" json:"saturday_opening"`
	SaturdayClosing string `gorm:"size:10;not null" json:"saturday_closing"`
}
