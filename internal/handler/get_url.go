package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetURL перенаправляет с короткого кода на оригинальный URL
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")

	originalURL, err := h.usecase.GetOriginalURL(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusTemporaryRedirect)
}
