package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/otp"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// OtpHandler handles OTP issuance and verification endpoints.
type OtpHandler struct {
	svc otp.Service
}

func NewOtpHandler(svc otp.Service) *OtpHandler { return &OtpHandler{svc: svc} }

func (h *OtpHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.SendOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Issue(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OtpSentEnvelope{
		Success:   true,
		Message:   "OTP sent successfully to your email",
		ExpiresIn: res.ExpiresIn,
	})
}

func (h *OtpHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Verify(r.Context(), req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "OTP verified successfully"})
}
