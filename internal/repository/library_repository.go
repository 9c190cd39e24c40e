package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

// LibraryRepository covers both the book categories and the timings
// singleton.
type LibraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

func (r *LibraryRepository) ListBooks() ([]model.LibraryBook, error) {
	var books []model.LibraryBook
	if err := r.db.Order("category").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list library books failed: %w", err)
	}
	return books, nil
}

func (r *LibraryRepository) GetBookByID(id uint) (*model.LibraryBook, error) {
	var book model.LibraryBook
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query library book failed: %w", err)
	}
	return &book, nil
}

func (r *LibraryRepository) CreateBook(book *model.LibraryBook) error {
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("create library book failed: %w", err)
	}
	return nil
}

func (r *LibraryRepository) SaveBook(book *model.LibraryBook) error {
	if err := r.db.Save(book).Error; err != nil {
		return fmt.Errorf("save library book failed: %w", err)
	}
	return nil
}

func (r *LibraryRepository) DeleteBook(id uint) error {
	if err := r.db.Delete(&model.LibraryBook{}, id).Error; err != nil {
		return fmt.Errorf("delete library book failed: %w", err)
	}
	return nil
}

func (r *LibraryRepository) CountBooks() (int64, error) {
	var count int64
	if err := r.db.Model(&model.LibraryBook{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count library books failed: %w", err)
	}
	return count, nil
}

// FirstTiming returns the timings singleton, nil when no row exists yet.
func (r *LibraryRepository) FirstTiming() (*model.LibraryTiming, error) {
	var timing model.LibraryTiming
	if err := r.db.First(&timing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query library timings failed: %w", err)
	}
	return &timing, nil
}

func (r *LibraryRepository) SaveTiming(timing *model.LibraryTiming) error {
	if err := r.db.Save(timing).Error; err != nil {
		return fmt.Errorf("save library timings failed: %w", err)
	}
	return nil
}
