package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
)

// CreateURLJSON обрабатывает POST /api/shorten
func (h *Handler) CreateURLJSON(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.logger.Debug("invalid shorten request", zap.Error(err))
		http.Error(w, usecase.ErrEmptyURL.Error(), http.StatusBadRequest)
		return
	}

	userID, _ := h.getUserIDFromRequest(req)

	shortURL, err := h.usecase.CreateShortURLFromString(req.Context(), request.URL, userID)
	if err != nil {
		var urlExistsErr usecase.URLAlreadyExistsError
		if errors.As(err, &urlExistsErr) {
			h.writeJSON(w, http.StatusConflict, model.ShortenResponse{Result: urlExistsErr.ExistingURL()})
			return
		}

		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, model.ShortenResponse{Result: shortURL})
}
