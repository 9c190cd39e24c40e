package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"college-assist/internal/model"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// List returns payments newest first.
func (r *PaymentRepository) List() ([]model.StudentFeePayment, error) {
	var payments []model.StudentFeePayment
	if err := r.db.Order("payment_date DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments failed: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) GetByID(id uint) (*model.StudentFeePayment, error) {
	var payment model.StudentFeePayment
	if err := r.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query payment failed: %w", err)
	}
	return &payment, nil
}

// FirstByStudentID returns the first receipt for a student id, nil when the
// student has none.
func (r *PaymentRepository) FirstByStudentID(studentID string) (*model.StudentFeePayment, error) {
	var payment model.StudentFeePayment
	if err := r.db.Where("student_id = ?", studentID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query payment by student id failed: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(payment *model.StudentFeePayment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("create payment failed: %w", err)
	}
	return nil
}

func (r *PaymentRepository) Save(payment *model.StudentFeePayment) error {
	if err := r.db.Save(payment).Error; err != nil {
		return fmt.Errorf("save payment failed: %w", err)
	}
	return nil
}

func (r *PaymentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.StudentFeePayment{}, id).Error; err != nil {
		return fmt.Errorf("delete payment failed: %w", err)
	}
	return nil
}
