package app

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"college-assist/internal/model"
	"college-assist/internal/pkg/jwtutil"
	"college-assist/internal/repository"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrNotFound          = errors.New("record not found")
)

type AuthService struct {
	adminRepo     *repository.AdminRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	Token string
	Admin *model.Admin
}

func NewAuthService(adminRepo *repository.AdminRepository, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		adminRepo:     adminRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Admin: admin}, nil
}

func (s *AuthService) GetAdminByID(id uint) (*model.Admin, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.adminRepo.GetByID(id)
}
