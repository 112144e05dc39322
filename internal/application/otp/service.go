package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// Policy constants. These are the only defense against online guessing of
// the 6-digit space, so they are fixed rather than configurable.
const (
	otpTTL      = 10 * time.Minute
	maxAttempts = 5
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldAttempts   = "attempts"
	fieldVerified   = "verified"
	fieldVerifiedAt = "verified_at"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SendResult struct {
	ExpiresIn int `json:"expiresIn"` // seconds
}

type Service interface {
	// Issue generates a fresh code for email, replacing any prior record,
	// and emails it. Purpose defaults to "verification".
	Issue(ctx context.Context, req domain.SendOtpRequest) (*SendResult, error)
	// Verify checks a presented code against the stored record. Rejections
	// are the named errors in the domain package; a mismatch increments
	// the attempt counter.
	Verify(ctx context.Context, req domain.VerifyOtpRequest) error
}

type otpStore interface {
	Put(ctx context.Context, rec *domain.OtpRecord) error
	Get(ctx context.Context, email string) (*domain.OtpRecord, error)
	Update(ctx context.Context, email string, updates map[string]interface{}) error
}

type mailer interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

type service struct {
	repo   otpStore
	mailer mailer
	now    func() time.Time
}

func NewService(repo otpStore, m mailer) Service {
	return &service{repo: repo, mailer: m, now: time.Now}
}

func (s *service) Issue(ctx context.Context, req domain.SendOtpRequest) (*SendResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		purpose = domain.OTPPurposeVerification
	}

	if email == "" {
		return nil, domain.BadRequest("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.BadRequest("Invalid email format")
	}
	if s.mailer == nil {
		return nil, domain.NotConfigured("Email service is not configured. Please contact support.")
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}

	now := s.now().UTC()
	rec := &domain.OtpRecord{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL).Unix(),
		Attempts:  0,
		Verified:  false,
	}
	if err := s.repo.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("store otp record: %w", err)
	}

	subject, htmlBody, textBody := composeMessage(purpose, code)
	if err := s.mailer.Send(ctx, email, subject, htmlBody, textBody); err != nil {
		return nil, err
	}

	slog.Info("otp sent", "email", email, "purpose", purpose)
	return &SendResult{ExpiresIn: int(otpTTL.Seconds())}, nil
}

func (s *service) Verify(ctx context.Context, req domain.VerifyOtpRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	code := strings.TrimSpace(req.Otp)
	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		purpose = domain.OTPPurposeVerification
	}

	if email == "" || code == "" {
		return domain.BadRequest("Email and OTP are required")
	}

	rec, err := s.repo.Get(ctx, email)
	if err != nil {
		return err
	}

	// Check order matters for the user-facing outcome: an expired code must
	// never be reported as a wrong code, and the attempt counter must not
	// move once the record is unusable for other reasons.
	if rec.Verified {
		return domain.ErrOtpAlreadyUsed
	}
	if s.now().Unix() > rec.ExpiresAt {
		return domain.ErrOtpExpired
	}
	if rec.Purpose != purpose {
		return domain.ErrOtpPurposeMismatch
	}
	if rec.Attempts >= maxAttempts {
		return domain.ErrOtpMaxAttempts
	}
	if rec.Code != code {
		if err := s.repo.Update(ctx, email, map[string]interface{}{
			fieldAttempts: rec.Attempts + 1,
		}); err != nil {
			return fmt.Errorf("increment otp attempts: %w", err)
		}
		return &domain.OtpInvalidCodeError{Remaining: maxAttempts - rec.Attempts - 1}
	}

	now := s.now().UTC()
	if err := s.repo.Update(ctx, email, map[string]interface{}{
		fieldVerified:   true,
		fieldVerifiedAt: now,
	}); err != nil {
		return fmt.Errorf("mark otp verified: %w", err)
	}

	slog.Info("otp verified", "email", email, "purpose", purpose)
	return nil
}

// generateCode draws a uniformly random 6-digit code from [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func composeMessage(purpose, code string) (subject, htmlBody, textBody string) {
	if purpose == domain.OTPPurposePayment {
		subject = "ExoMart - Payment Verification OTP"
		htmlBody = fmt.Sprintf(otpEmailHTML, "Payment Verification",
			"Your OTP for payment verification is:", code,
			"If you did not request this OTP, please ignore this email.")
		textBody = fmt.Sprintf("Your OTP for payment verification is: %s. This OTP is valid for %d minutes.", code, int(otpTTL.Minutes()))
		return
	}
	subject = "ExoMart - Email Verification OTP"
	htmlBody = fmt.Sprintf(otpEmailHTML, "Welcome to ExoMart!",
		"Thank you for signing up. Please verify your email address using the OTP below:", code,
		"If you did not create an account with ExoMart, please ignore this email.")
	textBody = fmt.Sprintf("Your email verification OTP is: %s. This OTP is valid for %d minutes.", code, int(otpTTL.Minutes()))
	return
}

const otpEmailHTML = `<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h2 style="color: #2563eb;">%s</h2>
      <p>%s</p>
      <div style="background-color: #f3f4f6; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px;">
        <h1 style="color: #2563eb; font-size: 32px; margin: 0; letter-spacing: 5px;">%s</h1>
      </div>
      <p>This OTP is valid for 10 minutes.</p>
      <p style="color: #666; font-size: 12px; margin-top: 30px;">%s</p>
    </div>
  </body>
</html>`
