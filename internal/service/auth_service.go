package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AuthCookieName имя куки с JWT токеном пользователя
	AuthCookieName = "user_token"
	tokenTTL       = 24 * time.Hour
)

// AuthService предоставляет функциональность для аутентификации пользователей
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// GenerateUserID генерирует уникальный идентификатор пользователя
func (a *AuthService) GenerateUserID() string {
	return uuid.New().String()
}

// GenerateJWT создает JWT токен для пользователя
func (a *AuthService) GenerateJWT(userID string) (string, error) {
	now := a.now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(tokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет JWT токен и извлекает user_id
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: user_id not found in token", ErrInvalidToken)
	}

	return userID, nil
}

// UserFromRequest извлекает user_id из куки. Возвращает ErrInvalidToken, если куки нет или она недействительна.
func (a *AuthService) UserFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrInvalidToken
	}

	return a.ValidateJWT(cookie.Value)
}

// GetOrCreateUserFromCookie извлекает user_id из куки или создает нового пользователя
func (a *AuthService) GetOrCreateUserFromCookie(r *http.Request, w http.ResponseWriter) (string, error) {
	if userID, err := a.UserFromRequest(r); err == nil {
		return userID, nil
	}

	// Куки нет или токен недействителен, создаем нового пользователя
	userID := a.GenerateUserID()
	token, err := a.GenerateJWT(userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokenTTL.Seconds()),
	})

	return userID, nil
}
