package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxBodySize ограничивает размер тела запроса
const maxBodySize = 1 << 20

// URLUsecase определяет интерфейс бизнес-логики, нужной обработчикам
type URLUsecase interface {
	CreateShortURLFromString(ctx context.Context, urlString string, userID string) (string, error)
	CreateShortURLsBatch(ctx context.Context, urlStrings []string, userID string) ([]string, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetURLsByUserID(ctx context.Context, userID string) ([]model.UserURLResponse, error)
	DeleteURLs(ctx context.Context, codes []string, userID string) error
	Ping(ctx context.Context) error
}

// Forecaster источник демонстрационного прогноза погоды
type Forecaster interface {
	Forecast() []model.WeatherForecast
}

// Handler содержит HTTP обработчики сервиса
type Handler struct {
	usecase    URLUsecase
	forecaster Forecaster
	validate   *validator.Validate
	logger     *zap.Logger
}

// New создает новый экземпляр Handler
func New(usecase URLUsecase, forecaster Forecaster, logger *zap.Logger) *Handler {
	return &Handler{
		usecase:    usecase,
		forecaster: forecaster,
		validate:   validator.New(),
		logger:     logger,
	}
}

// handleError переводит ошибки бизнес-логики в HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL), errors.Is(err, usecase.ErrInvalidURL):
		h.logger.Debug("bad request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrURLNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrURLDeleted):
		http.Error(w, "Gone", http.StatusGone)
	default:
		h.logger.Error("internal error", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *Handler) getUserIDFromRequest(r *http.Request) (string, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Int("status", status), zap.Error(err))
	}
}

// decodeJSON читает тело запроса не больше maxBodySize и проверяет теги validate
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := decoder.Decode(dst); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}

	return true
}
