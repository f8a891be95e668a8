package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// DeleteURLs принимает список кодов на удаление и отвечает 202, удаление идет в фоне
func (h *Handler) DeleteURLs(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		h.logger.Debug("user ID not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var codes []string
	if !h.decodeJSON(w, req, &codes) {
		return
	}

	if len(codes) == 0 {
		h.logger.Debug("empty codes list")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.usecase.DeleteURLs(req.Context(), codes, userID); err != nil {
		h.logger.Error("failed to initiate URL deletion", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
