package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed login; it deliberately does
// not distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

type IAuthService interface {
	ValidateUser(email, password string) (*models.User, error)
	Login(user *models.User) (*LoginResult, error)
}

type AuthService struct {
	userService IUserService
	jwtSecret   string
	accessTTL   time.Duration
}

func NewAuthService(userService IUserService, jwtSecret string, accessTTLDays int) IAuthService {
	return &AuthService{
		userService: userService,
		jwtSecret:   jwtSecret,
		accessTTL:   time.Duration(accessTTLDays) * 24 * time.Hour,
	}
}

func (s *AuthService) ValidateUser(email, password string) (*models.User, error) {
	user, err := s.userService.FindByEmail(email)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) Login(user *models.User) (*LoginResult, error) {
	accessToken, err := s.signToken(user, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user, s.accessTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *AuthService) signToken(user *models.User, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"type":  user.Type,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}
