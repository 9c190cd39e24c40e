package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// List returns admission documents ordered by admission type then display
// order, optionally filtered to one admission type (case-insensitive).
func (r *DocumentRepository) List(admissionType string) ([]model.AdmissionDocument, error) {
	query := r.db.Model(&model.AdmissionDocument{})
	if admissionType != "" {
		query = query.Where("LOWER(admission_type) = LOWER(?)", admissionType)
	}
	var docs []model.AdmissionDocument
	if err := query.Order("admission_type").Order("display_order").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list admission documents failed: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) GetByID(id uint) (*model.AdmissionDocument, error) {
	var doc model.AdmissionDocument
	if err := r.db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query admission document failed: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) Create(doc *model.AdmissionDocument) error {
	if err := r.db.Create(doc).Error; err != nil {
		return fmt.Errorf("create admission document failed: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Save(doc *model.AdmissionDocument) error {
	if err := r.db.Save(doc).Error; err != nil {
		return fmt.Errorf("save admission document failed: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.AdmissionDocument{}, id).Error; err != nil {
		return fmt.Errorf("delete admission document failed: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.AdmissionDocument{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count admission documents failed: %w", err)
	}
	return count, nil
}
