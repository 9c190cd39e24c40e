package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

type ScholarshipRepository struct {
	db *gorm.DB
}

func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

// List returns scholarships ordered by name; category filters
// case-insensitively and activeOnly keeps only active records.
func (r *ScholarshipRepository) List(category string, activeOnly bool) ([]model.Scholarship, error) {
	query := r.db.Model(&model.Scholarship{})
	if category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var scholarships []model.Scholarship
	if err := query.Order("scholarship_name").Find(&scholarships).Error; err != nil {
		return nil, fmt.Errorf("list scholarships failed: %w", err)
	}
	return scholarships, nil
}

func (r *ScholarshipRepository) GetByID(id uint) (*model.Scholarship, error) {
	var scholarship model.Scholarship
	if err := r.db.First(&scholarship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query scholarship failed: %w", err)
	}
	return &scholarship, nil
}

func (r *ScholarshipRepository) Create(scholarship *model.Scholarship) error {
	if err := r.db.Create(scholarship).Error; err != nil {
		return fmt.Errorf("create scholarship failed: %w", err)
	}
	return nil
}

func (r *ScholarshipRepository) Save(scholarship *model.Scholarship) error {
	if err := r.db.Save(scholarship).Error; err != nil {
		return fmt.Errorf("save scholarship failed: %w", err)
	}
	return nil
}

func (r *ScholarshipRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Scholarship{}, id).Error; err != nil {
		return fmt.Errorf("delete scholarship failed: %w", err)
	}
	return nil
}

func (r *ScholarshipRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Scholarship{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count scholarships failed: %w", err)
	}
	return count, nil
}
