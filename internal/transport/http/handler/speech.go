package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/speech"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// SpeechHandler handles the text-to-speech endpoint.
type SpeechHandler struct {
	svc speech.Service
}

func NewSpeechHandler(svc speech.Service) *SpeechHandler { return &SpeechHandler{svc: svc} }

func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req domain.SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	audio, err := h.svc.Synthesize(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
