package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(admin *model.Admin) error {
	if err := r.db.Create(admin).Error; err != nil {
		return fmt.Errorf("create admin failed: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query admin by username failed: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) GetByID(id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query admin by id failed: %w", err)
	}
	return &admin, nil
}
