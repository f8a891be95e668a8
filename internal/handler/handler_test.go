package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const testUserID = "user-1"

func newTestHandler(t *testing.T) (*Handler, *mocks.MockURLUsecase) {
	t.Helper()

	mockUsecase := mocks.NewMockURLUsecase(t)
	return New(mockUsecase, service.NewForecastService(), zap.NewNop()), mockUsecase
}

// withUser добавляет user_id в контекст так же, как это делает middleware аутентификации
func withUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

// withURLParam добавляет chi параметр маршрута
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
