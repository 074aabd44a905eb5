package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/aishwaryaxerox/print_shop/internal/hash"
	"github.com/aishwaryaxerox/print_shop/internal/models"
)

const tokenTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so the response never reveals which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Identity is the admin identity embedded in a verified token.
type Identity struct {
	ID       uint
	Username string
}

type AuthService struct {
	DB        *gorm.DB
	JWTSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret []byte) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret}
}

// Authenticate checks the username/password pair against the stored bcrypt
// hash and, on success, issues a signed token valid for 24 hours. The token
// is self-contained: no session state is kept server-side.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, *models.AdminUser, error) {
	var user models.AdminUser
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get admin user: %w", err)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &user, nil
}

// Verify validates the token signature and expiry and returns the embedded
// identity without touching the store.
func (s *AuthService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Identity{ID: uint(sub), Username: username}, nil
}
