package services

import (
	"errors"
	"strings"
	"time"

	"mesa-game-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken  = errors.New("username is already registered")
	ErrBadCredentials = errors.New("invalid username or password")
)

const tokenIssuer = "mesa-game"

// Session is an issued host credential.
type Session struct {
	Token     string    `json:"token"`
	HostID    uint      `json:"host_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type hostClaims struct {
	HostID uint `json:"host_id"`
	jwt.RegisteredClaims
}

// AuthService issues and checks host sessions. Only hosts authenticate
// here; players hold mesa-scoped web tokens handed out by MesaService.
type AuthService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{db: db, secret: []byte(secret), ttl: ttl}
}

func (s *AuthService) Register(username, password string) (*Session, error) {
	username = strings.TrimSpace(username)

	var count int64
	if err := s.db.Model(&models.Host{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	host := models.Host{Username: username, PasswordHash: string(hash)}
	if err := s.db.Create(&host).Error; err != nil {
		return nil, err
	}

	return s.issue(host.ID)
}

func (s *AuthService) Login(username, password string) (*Session, error) {
	var host models.Host
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&host).Error; err != nil {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(host.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	return s.issue(host.ID)
}

func (s *AuthService) issue(hostID uint) (*Session, error) {
	now := time.Now()
	expires := now.Add(s.ttl)
	claims := hostClaims{
		HostID: hostID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, HostID: hostID, ExpiresAt: expires}, nil
}

// ValidateToken returns the host ID carried by a live token.
func (s *AuthService) ValidateToken(raw string) (uint, error) {
	var claims hostClaims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}
	if claims.HostID == 0 {
		return 0, errors.New("token carries no host")
	}
	return claims.HostID, nil
}
