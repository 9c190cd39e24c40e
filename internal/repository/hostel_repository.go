package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

// HostelRepository covers the facility list and the fee schedule singleton.
type HostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) *HostelRepository {
	return &HostelRepository{db: db}
}

func (r *HostelRepository) ListFacilities() ([]model.HostelFacility, error) {
	var facilities []model.HostelFacility
	if err := r.db.Order("facility_name").Find(&facilities).Error; err != nil {
		return nil, fmt.Errorf("list hostel facilities failed: %w", err)
	}
	return facilities, nil
}

func (r *HostelRepository) GetFacilityByID(id uint) (*model.HostelFacility, error) {
	var facility model.HostelFacility
	if err := r.db.First(&facility, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query hostel facility failed: %w", err)
	}
	return &facility, nil
}

func (r *HostelRepository) CreateFacility(facility *model.HostelFacility) error {
	if err := r.db.Create(facility).Error; err != nil {
		return fmt.Errorf("create hostel facility failed: %w", err)
	}
	return nil
}

func (r *HostelRepository) SaveFacility(facility *model.HostelFacility) error {
	if err := r.db.Save(facility).Error; err != nil {
		return fmt.Errorf("save hostel facility failed: %w", err)
	}
	return nil
}

func (r *HostelRepository) DeleteFacility(id uint) error {
	if err := r.db.Delete(&model.HostelFacility{}, id).Error; err != nil {
		return fmt.Errorf("delete hostel facility failed: %w", err)
	}
	return nil
}

func (r *HostelRepository) CountFacilities() (int64, error) {
	var count int64
	if err := r.db.Model(&model.HostelFacility{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count hostel facilities failed: %w", err)
	}
	return count, nil
}

// FirstFeeSchedule returns the fee schedule singleton, nil when absent.
func (r *HostelRepository) FirstFeeSchedule() (*model.HostelFeeSchedule, error) {
	var fees model.HostelFeeSchedule
	if err := r.db.First(&fees).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query hostel fee schedule failed: %w", err)
	}
	return &fees, nil
}

func (r *HostelRepository) SaveFeeSchedule(fees *model.HostelFeeSchedule) error {
	if err := r.db.Save(fees).Error; err != nil {
		return fmt.Errorf("save hostel fee schedule failed: %w", err)
	}
	return nil
}
