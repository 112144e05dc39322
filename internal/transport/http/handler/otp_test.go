package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/otp"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

type mockOtpService struct {
	mock.Mock
}

func (m *mockOtpService) Issue(ctx context.Context, req domain.SendOtpRequest) (*otp.SendResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*otp.SendResult), args.Error(1)
}

func (m *mockOtpService) Verify(ctx context.Context, req domain.VerifyOtpRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func TestOtpSend_Success(t *testing.T) {
	svc := new(mockOtpService)
	svc.On("Issue", mock.Anything, domain.SendOtpRequest{Email: "a@b.com", Purpose: "payment"}).
		Return(&otp.SendResult{ExpiresIn: 600}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/otp/send", strings.NewReader(`{"email":"a@b.com","purpose":"payment"}`))
	rr := httptest.NewRecorder()
	NewOtpHandler(svc).Send(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body OtpSentEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "OTP sent successfully to your email", body.Message)
	assert.Equal(t, 600, body.ExpiresIn)
}

func TestOtpSend_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/otp/send", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	NewOtpHandler(new(mockOtpService)).Send(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOtpSend_MissingEmail(t *testing.T) {
	svc := new(mockOtpService)
	svc.On("Issue", mock.Anything, mock.Anything).Return(nil, domain.BadRequest("Email is required"))

	req := httptest.NewRequest(http.MethodPost, "/v1/otp/send", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	NewOtpHandler(svc).Send(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Email is required", body.Message)
	assert.Empty(t, body.Error)
}

func TestOtpSend_MailerNotConfigured(t *testing.T) {
	svc := new(mockOtpService)
	svc.On("Issue", mock.Anything, mock.Anything).
		Return(nil, domain.NotConfigured("Email service is not configured. Please contact support."))

	req := httptest.NewRequest(http.MethodPost, "/v1/otp/send", strings.NewReader(`{"email":"a@b.com"}`))
	rr := httptest.NewRecorder()
	NewOtpHandler(svc).Send(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Email service is not configured. Please contact support.", body.Message)
}

func TestOtpVerify_Success(t *testing.T) {
	svc := new(mockOtpService)
	svc.On("Verify", mock.Anything, domain.VerifyOtpRequest{Email: "a@b.com", Otp: "123456"}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", strings.NewReader(`{"email":"a@b.com","otp":"123456"}`))
	rr := httptest.NewRecorder()
	NewOtpHandler(svc).Verify(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "OTP verified successfully", body.Message)
}

func TestOtpVerify_NotFound(t *testing.T) {
	svc := new(mockOtpService)
	svc.On("Verify", mock.Anything, mock.Anything).Return(domain.ErrOtpNotFound)

	req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", strings.NewReader(`{"email":"a@b.com","otp":"123456"}`))
	rr := httptest.NewRecorder()
	NewOtpHandler(svc).Verify(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var body MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "OTP not found. Please request a new OTP.", body.Message)
	assert.Empty(t, body.Error)
}

func TestOtpVerify_WrongCode(t *testing.T) {
	svc := new(mockOtpService)
	svc.On("Verify", mock.Anything, mock.Anything).Return(&domain.OtpInvalidCodeError{Remaining: 4})

	req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", strings.NewReader(`{"email":"a@b.com","otp":"000000"}`))
	rr := httptest.NewRecorder()
	NewOtpHandler(svc).Verify(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid OTP. 4 attempt(s) remaining.", body.Message)
	assert.Empty(t, body.Error)
}

func TestOtpVerify_Expired(t *testing.T) {
	svc := new(mockOtpService)
	svc.On("Verify", mock.Anything, mock.Anything).Return(domain.ErrOtpExpired)

	req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", strings.NewReader(`{"email":"a@b.com","otp":"123456"}`))
	rr := httptest.NewRecorder()
	NewOtpHandler(svc).Verify(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "OTP has expired. Please request a new OTP.", body.Message)
	assert.Empty(t, body.Error)
}
