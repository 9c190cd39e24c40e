package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// List returns tickets newest first, optionally filtered by status
// (case-insensitive).
func (r *TicketRepository) List(status string) ([]model.HelpTicket, error) {
	query := r.db.Model(&model.HelpTicket{})
	if status != "" {
		query = query.Where("LOWER(status) = LOWER(?)", status)
	}
	var tickets []model.HelpTicket
	if err := query.Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("list tickets failed: %w", err)
	}
	return tickets, nil
}

func (r *TicketRepository) GetByID(id uint) (*model.HelpTicket, error) {
	var ticket model.HelpTicket
	if err := r.db.First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query ticket failed: %w", err)
	}
	return &ticket, nil
}

func (r *TicketRepository) Create(ticket *model.HelpTicket) error {
	if err := r.db.Create(ticket).Error; err != nil {
		return fmt.Errorf("create ticket failed: %w", err)
	}
	return nil
}

func (r *TicketRepository) Save(ticket *model.HelpTicket) error {
	if err := r.db.Save(ticket).Error; err != nil {
		return fmt.Errorf("save ticket failed: %w", err)
	}
	return nil
}
