package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

// EventRepository covers events and the college timings singleton.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events ordered by date, optionally filtered to one event
// type (case-insensitive).
func (r *EventRepository) List(eventType string) ([]model.Event, error) {
	query := r.db.Model(&model.Event{})
	if eventType != "" {
		query = query.Where("LOWER(event_type) = LOWER(?)", eventType)
	}
	var events []model.Event
	if err := query.Order("event_date").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events failed: %w", err)
	}
	return events, nil
}

func (r *EventRepository) GetByID(id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query event failed: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Create(event *model.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create event failed: %w", err)
	}
	return nil
}

func (r *EventRepository) Save(event *model.Event) error {
	if err := r.db.Save(event).Error; err != nil {
		return fmt.Errorf("save event failed: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Event{}, id).Error; err != nil {
		return fmt.Errorf("delete event failed: %w", err)
	}
	return nil
}

func (r *EventRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Event{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count events failed: %w", err)
	}
	return count, nil
}

// FirstCollegeTiming returns the college timings singleton, nil when absent.
func (r *EventRepository) FirstCollegeTiming() (*model.CollegeTiming, error) {
	var timing model.CollegeTiming
	if err := r.db.First(&timing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query college timings failed: %w", err)
	}
	return &timing, nil
}

func (r *EventRepository) SaveCollegeTiming(timing *model.CollegeTiming) error {
	if err := r.db.Save(timing).Error; err != nil {
		return fmt.Errorf("save college timings failed: %w", err)
	}
	return nil
}
