package handler

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// CreateURLBatch обрабатывает POST /api/shorten/batch.
// Ответ сохраняет порядок и correlation_id входных элементов.
func (h *Handler) CreateURLBatch(w http.ResponseWriter, req *http.Request) {
	var requests []model.BatchShortenRequest
	if !h.decodeJSON(w, req, &requests) {
		return
	}

	if len(requests) == 0 {
		h.logger.Warn("empty batch request", zap.String("remote_addr", req.RemoteAddr))
		http.Error(w, "Empty batch", http.StatusBadRequest)
		return
	}

	if err := h.validate.Var(requests, "dive"); err != nil {
		h.logger.Debug("invalid batch request", zap.Error(err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	urlStrings := make([]string, len(requests))
	for i, request := range requests {
		urlStrings[i] = request.OriginalURL
	}

	// userID пустой для анонимных пользователей
	userID, _ := h.getUserIDFromRequest(req)

	shortURLs, err := h.usecase.CreateShortURLsBatch(req.Context(), urlStrings, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]model.BatchShortenResponse, len(requests))
	for i, request := range requests {
		responses[i] = model.BatchShortenResponse{
			CorrelationID: request.CorrelationID,
			ShortURL:      shortURLs[i],
		}
	}

	h.writeJSON(w, http.StatusCreated, responses)
}
