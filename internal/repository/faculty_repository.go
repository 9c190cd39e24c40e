package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

type FacultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// List returns faculty ordered by department then name, optionally filtered
// to one department (case-insensitive).
func (r *FacultyRepository) List(department string) ([]model.FacultyMember, error) {
	query := r.db.Model(&model.FacultyMember{})
	if department != "" {
		query = query.Where("LOWER(department) = LOWER(?)", department)
	}
	var members []model.FacultyMember
	if err := query.Order("department").Order("name").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list faculty failed: %w", err)
	}
	return members, nil
}

func (r *FacultyRepository) GetByID(id uint) (*model.FacultyMember, error) {
	var member model.FacultyMember
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query faculty member failed: %w", err)
	}
	return &member, nil
}

func (r *FacultyRepository) Create(member *model.FacultyMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return fmt.Errorf("create faculty member failed: %w", err)
	}
	return nil
}

func (r *FacultyRepository) Save(member *model.FacultyMember) error {
	if err := r.db.Save(member).Error; err != nil {
		return fmt.Errorf("save faculty member failed: %w", err)
	}
	return nil
}

func (r *FacultyRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.FacultyMember{}, id).Error; err != nil {
		return fmt.Errorf("delete faculty member failed: %w", err)
	}
	return nil
}

func (r *FacultyRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.FacultyMember{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count faculty failed: %w", err)
	}
	return count, nil
}

// FirstPrincipal returns the principal singleton, nil when absent.
func (r *FacultyRepository) FirstPrincipal() (*model.PrincipalInfo, error) {
	var principal model.PrincipalInfo
	if err := r.db.First(&principal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query principal failed: %w", err)
	}
	return &principal, nil
}

func (r *FacultyRepository) SavePrincipal(principal *model.PrincipalInfo) error {
	if err := r.db.Save(principal).Error; err != nil {
		return fmt.Errorf("save principal failed: %w", err)
	}
	return nil
}
