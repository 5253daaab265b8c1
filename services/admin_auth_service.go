package services

import (
	"errors"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminAuthService authenticates the single trusted administrator configured
// through ADMIN_EMAIL and ADMIN_PASSWORD_HASH (bcrypt).
type AdminAuthService struct {
	email        string
	passwordHash string
}

var adminAuthService *AdminAuthService

func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = &AdminAuthService{
			email:        strings.ToLower(os.Getenv("ADMIN_EMAIL")),
			passwordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		}
		if adminAuthService.email == "" || adminAuthService.passwordHash == "" {
			log.Println("⚠️  ADMIN_EMAIL / ADMIN_PASSWORD_HASH not set, admin login disabled")
		}
	}
	return adminAuthService
}

// Login checks the credentials and returns a signed admin token.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	if s.email == "" || s.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	if strings.ToLower(strings.TrimSpace(email)) != s.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return GetJWTService().GenerateAdminJWT(s.email)
}

// IsAdminEmail reports whether email is the recognized administrator
// identity; the counter service keys its coordinated path off this.
func (s *AdminAuthService) IsAdminEmail(email string) bool {
	return s.email != "" && strings.ToLower(strings.TrimSpace(email)) == s.email
}
