package middleware

import (
	"context"
	"net/http"

	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

type userIDKey struct{}

// AuthMiddleware аутентифицирует пользователей по JWT в куке
type AuthMiddleware struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthMiddleware(authService *service.AuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// OptionalAuth выдает новую личность, если куки нет или она недействительна.
// user_id всегда оказывается в контексте запроса.
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := am.authService.GetOrCreateUserFromCookie(r, w)
		if err != nil {
			am.logger.Error("failed to authenticate user", zap.Error(err))
			http.Error(w, "Authentication failed", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// RequireAuth пропускает только запросы с действительной кукой, иначе 401
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := am.authService.UserFromRequest(r)
		if err != nil {
			am.logger.Debug("rejected unauthenticated request",
				zap.String("uri", r.RequestURI),
				zap.Error(err),
			)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладет user_id в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}
