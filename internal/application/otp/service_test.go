package otp

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockOtpStore struct{ mock.Mock }

func (m *mockOtpStore) Put(ctx context.Context, rec *domain.OtpRecord) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *mockOtpStore) Get(ctx context.Context, email string) (*domain.OtpRecord, error) {
	args := m.Called(ctx, email)
	if rec, _ := args.Get(0).(*domain.OtpRecord); rec != nil {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOtpStore) Update(ctx context.Context, email string, updates map[string]interface{}) error {
	return m.Called(ctx, email, updates).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	return m.Called(ctx, to, subject, htmlBody, textBody).Error(0)
}

func newService(store *mockOtpStore, ml *mockMailer, now time.Time) Service {
	svc := NewService(store, ml)
	svc.(*service).now = func() time.Time { return now }
	return svc
}

func validRecord(now time.Time) *domain.OtpRecord {
	return &domain.OtpRecord{
		Email:     "user@test.com",
		Code:      "123456",
		Purpose:   domain.OTPPurposeVerification,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute).Unix(),
	}
}

// --- Issue ---

func TestIssue_StoresFreshRecordAndSendsMail(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &mockOtpStore{}
	ml := &mockMailer{}

	var stored *domain.OtpRecord
	store.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.OtpRecord)
	}).Return(nil)
	ml.On("Send", mock.Anything, "user@test.com", "ExoMart - Email Verification OTP",
		mock.Anything, mock.Anything).Return(nil)

	svc := newService(store, ml, now)
	res, err := svc.Issue(context.Background(), domain.SendOtpRequest{Email: "  User@Test.COM "})

	require.NoError(t, err)
	assert.Equal(t, 600, res.ExpiresIn)

	require.NotNil(t, stored)
	assert.Equal(t, "user@test.com", stored.Email)
	assert.Equal(t, domain.OTPPurposeVerification, stored.Purpose)
	assert.Equal(t, 0, stored.Attempts)
	assert.False(t, stored.Verified)
	assert.Equal(t, now.Add(10*time.Minute).Unix(), stored.ExpiresAt)

	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), stored.Code)
	n, _ := strconv.Atoi(stored.Code)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	ml.AssertExpectations(t)
}

func TestIssue_PaymentPurposeUsesPaymentTemplate(t *testing.T) {
	now := time.Now()
	store := &mockOtpStore{}
	ml := &mockMailer{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	ml.On("Send", mock.Anything, "a@b.com", "ExoMart - Payment Verification OTP",
		mock.Anything, mock.Anything).Return(nil)

	svc := newService(store, ml, now)
	_, err := svc.Issue(context.Background(), domain.SendOtpRequest{Email: "a@b.com", Purpose: "payment"})

	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestIssue_MissingEmail_NoSideEffects(t *testing.T) {
	store := &mockOtpStore{}
	ml := &mockMailer{}

	svc := newService(store, ml, time.Now())
	_, err := svc.Issue(context.Background(), domain.SendOtpRequest{Email: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Equal(t, "Email is required", err.Error())
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	ml.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIssue_MalformedEmail_Rejected(t *testing.T) {
	svc := newService(&mockOtpStore{}, &mockMailer{}, time.Now())

	for _, email := range []string{"no-at-sign", "missing@tld", "two@@x.com", "spa ce@x.com", "a@b. c"} {
		_, err := svc.Issue(context.Background(), domain.SendOtpRequest{Email: email})
		require.Error(t, err, "email %q should be rejected", email)
		assert.Equal(t, "Invalid email format", err.Error())
	}
}

func TestIssue_MailerMisconfigured_SurfacedDistinctly(t *testing.T) {
	store := &mockOtpStore{}
	ml := &mockMailer{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	ml.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.NotConfigured("Email service is not configured. Please contact support."))

	svc := newService(store, ml, time.Now())
	_, err := svc.Issue(context.Background(), domain.SendOtpRequest{Email: "a@b.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotConfigured)
}

// --- Verify ---

func TestVerify_HappyPath_MarksVerified(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(validRecord(now), nil)
	store.On("Update", mock.Anything, "user@test.com", mock.MatchedBy(func(u map[string]interface{}) bool {
		verified, _ := u["verified"].(bool)
		_, hasTS := u["verified_at"]
		return verified && hasTS
	})).Return(nil)

	svc := newService(store, &mockMailer{}, now.Add(time.Minute))
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{
		Email: "user@test.com", Otp: "123456",
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestVerify_MissingFields(t *testing.T) {
	svc := newService(&mockOtpStore{}, &mockMailer{}, time.Now())

	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.Equal(t, "Email and OTP are required", err.Error())

	err = svc.Verify(context.Background(), domain.VerifyOtpRequest{Otp: "123456"})
	require.Error(t, err)
	assert.Equal(t, "Email and OTP are required", err.Error())
}

func TestVerify_NoRecord_NotFound(t *testing.T) {
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "ghost@test.com").Return(nil, domain.ErrOtpNotFound)

	svc := newService(store, &mockMailer{}, time.Now())
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "ghost@test.com", Otp: "123456"})

	assert.ErrorIs(t, err, domain.ErrOtpNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerify_AlreadyUsed_IsTerminal(t *testing.T) {
	now := time.Now()
	rec := validRecord(now)
	rec.Verified = true
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(rec, nil)

	svc := newService(store, &mockMailer{}, now)
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "user@test.com", Otp: "123456"})

	assert.ErrorIs(t, err, domain.ErrOtpAlreadyUsed)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_Expired_EvenWithCorrectCode(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(validRecord(issued), nil)

	svc := newService(store, &mockMailer{}, issued.Add(11*time.Minute))
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "user@test.com", Otp: "123456"})

	assert.ErrorIs(t, err, domain.ErrOtpExpired)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_ExpiredWinsOverPurposeMismatch(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := validRecord(issued)
	rec.Purpose = domain.OTPPurposePayment
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(rec, nil)

	svc := newService(store, &mockMailer{}, issued.Add(time.Hour))
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{
		Email: "user@test.com", Otp: "123456", Purpose: "verification",
	})

	assert.ErrorIs(t, err, domain.ErrOtpExpired)
}

func TestVerify_PurposeMismatch_NoAttemptPenalty(t *testing.T) {
	now := time.Now()
	rec := validRecord(now)
	rec.Purpose = domain.OTPPurposePayment
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "a@b.com").Return(rec, nil)

	svc := newService(store, &mockMailer{}, now)
	// Right code, wrong purpose.
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{
		Email: "a@b.com", Otp: "123456", Purpose: "verification",
	})

	assert.ErrorIs(t, err, domain.ErrOtpPurposeMismatch)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_WrongCode_IncrementsAttemptsAndReportsRemaining(t *testing.T) {
	now := time.Now()
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(validRecord(now), nil)
	store.On("Update", mock.Anything, "user@test.com",
		map[string]interface{}{"attempts": 1}).Return(nil)

	svc := newService(store, &mockMailer{}, now)
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "user@test.com", Otp: "000000"})

	require.Error(t, err)
	var invalid *domain.OtpInvalidCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 4, invalid.Remaining)
	assert.Equal(t, "Invalid OTP. 4 attempt(s) remaining.", err.Error())
	store.AssertExpectations(t)
}

func TestVerify_FifthWrongCode_OmitsCount(t *testing.T) {
	now := time.Now()
	rec := validRecord(now)
	rec.Attempts = 4
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(rec, nil)
	store.On("Update", mock.Anything, "user@test.com",
		map[string]interface{}{"attempts": 5}).Return(nil)

	svc := newService(store, &mockMailer{}, now)
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "user@test.com", Otp: "000000"})

	require.Error(t, err)
	assert.Equal(t, "Invalid OTP. Please request a new OTP.", err.Error())
}

func TestVerify_LockoutEvenWithCorrectCode(t *testing.T) {
	now := time.Now()
	rec := validRecord(now)
	rec.Attempts = 5
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(rec, nil)

	svc := newService(store, &mockMailer{}, now)
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "user@test.com", Otp: "123456"})

	assert.ErrorIs(t, err, domain.ErrOtpMaxAttempts)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_IncrementFailure_Surfaced(t *testing.T) {
	now := time.Now()
	store := &mockOtpStore{}
	store.On("Get", mock.Anything, "user@test.com").Return(validRecord(now), nil)
	store.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	svc := newService(store, &mockMailer{}, now)
	err := svc.Verify(context.Background(), domain.VerifyOtpRequest{Email: "user@test.com", Otp: "000000"})

	require.Error(t, err)
	var invalid *domain.OtpInvalidCodeError
	assert.False(t, errors.As(err, &invalid))
}

func TestGenerateCode_AlwaysSixDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
