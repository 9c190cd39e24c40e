package model

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventName   string    `gorm:"size:200;not null" json:"event_name"`
	EventType   string    `gorm:"size:50;not null" json:"event_type"`
	EventDate   time.Time `gorm:"type:date" json:"event_date"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}
