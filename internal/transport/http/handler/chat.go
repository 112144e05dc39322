package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/chat"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// ChatHandler handles the shopping-assistant endpoint.
type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler { return &ChatHandler{svc: svc} }

func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Message(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ChatEnvelope{Success: true, ChatResult: res})
}
