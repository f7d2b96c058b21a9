package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bffgym/pos-be/config"
	"github.com/bffgym/pos-be/middleware"
	"github.com/bffgym/pos-be/models"
)

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func (s *AuthService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *AuthService) GenerateToken(staff *models.Staff) (string, error) {
	claims := middleware.Claims{
		StaffID: staff.ID,
		Email:   staff.Email,
		Role:    staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *AuthService) Login(email, password string) (*models.Staff, string, error) {
	var staff models.Staff
	if err := config.DB.Where("email = ? AND is_active = ?", email, true).First(&staff).Error; err != nil {
		return nil, "", errors.New("invalid credentials")
	}

	if !s.CheckPassword(password, staff.Password) {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := s.GenerateToken(&staff)
	if err != nil {
		return nil, "", err
	}

	return &staff, token, nil
}

func (s *AuthService) CreateStaff(email, password, name string, role models.StaffRole) (*models.Staff, error) {
	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	staff := models.Staff{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
		Role:     role,
		IsActive: true,
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		return nil, err
	}

	return &staff, nil
}
