package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
)

// CreateURL обрабатывает POST / с оригинальным URL в теле запроса (text/plain)
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("failed to read request body",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	userID, _ := h.getUserIDFromRequest(req)

	shortURL, err := h.usecase.CreateShortURLFromString(req.Context(), string(body), userID)
	if err != nil {
		var urlExistsErr usecase.URLAlreadyExistsError
		if errors.As(err, &urlExistsErr) {
			h.writeText(w, http.StatusConflict, urlExistsErr.ExistingURL())
			return
		}

		h.handleError(w, err)
		return
	}

	h.writeText(w, http.StatusCreated, shortURL)
}

func (h *Handler) writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)

	if _, err := io.WriteString(w, body); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
