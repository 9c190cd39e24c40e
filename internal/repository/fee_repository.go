package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

type FeeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// List returns fee structures ordered by category, optionally filtered to a
// single category (case-insensitive).
func (r *FeeRepository) List(category string) ([]model.FeeStructure, error) {
	query := r.db.Model(&model.FeeStructure{})
	if category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", category)
	}
	var fees []model.FeeStructure
	if err := query.Order("category").Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("list fees failed: %w", err)
	}
	return fees, nil
}

func (r *FeeRepository) GetByID(id uint) (*model.FeeStructure, error) {
	var fee model.FeeStructure
	if err := r.db.First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query fee failed: %w", err)
	}
	return &fee, nil
}

func (r *FeeRepository) Create(fee *model.FeeStructure) error {
	if err := r.db.Create(fee).Error; err != nil {
		return fmt.Errorf("create fee failed: %w", err)
	}
	return nil
}

func (r *FeeRepository) Save(fee *model.FeeStructure) error {
	if err := r.db.Save(fee).Error; err != nil {
		return fmt.Errorf("save fee failed: %w", err)
	}
	return nil
}

func (r *FeeRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.FeeStructure{}, id).Error; err != nil {
		return fmt.Errorf("delete fee failed: %w", err)
	}
	return nil
}

func (r *FeeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.FeeStructure{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count fees failed: %w", err)
	}
	return count, nil
}
