package domain

import (
	"fmt"
	"time"
)

// OTP purposes. A code issued for one purpose cannot be redeemed for another.
const (
	OTPPurposeVerification = "verification"
	OTPPurposePayment      = "payment"
)

// OtpRecord is the single active one-time password for an email address.
// PK: email. Issuing a new code unconditionally replaces the record, which
// resets attempts and clears the verified flag. ExpiresAt doubles as the
// DynamoDB TTL attribute; expiry is still enforced at verify time.
type OtpRecord struct {
	Email      string     `json:"email" dynamodbav:"email"`
	Code       string     `json:"-" dynamodbav:"code"`
	Purpose    string     `json:"purpose" dynamodbav:"purpose"`
	CreatedAt  time.Time  `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt  int64      `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
	Attempts   int        `json:"attempts" dynamodbav:"attempts"`
	Verified   bool       `json:"verified" dynamodbav:"verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty" dynamodbav:"verified_at,omitempty"`
}

type SendOtpRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type VerifyOtpRequest struct {
	Email   string `json:"email"`
	Otp     string `json:"otp"`
	Purpose string `json:"purpose"`
}

// Named verification rejections. Each carries its user-facing message; all
// unwrap to a sentinel so the transport layer can derive the status code.
var (
	ErrOtpNotFound        = &Error{Kind: ErrNotFound, Message: "OTP not found. Please request a new OTP."}
	ErrOtpAlreadyUsed     = &Error{Kind: ErrBadRequest, Message: "This OTP has already been used."}
	ErrOtpExpired         = &Error{Kind: ErrBadRequest, Message: "OTP has expired. Please request a new OTP."}
	ErrOtpPurposeMismatch = &Error{Kind: ErrBadRequest, Message: "Invalid OTP purpose."}
	ErrOtpMaxAttempts     = &Error{Kind: ErrBadRequest, Message: "Maximum verification attempts exceeded. Please request a new OTP."}
)

// OtpInvalidCodeError is returned on a code mismatch. Remaining is the
// number of attempts left after the failed one was counted.
type OtpInvalidCodeError struct {
	Remaining int
}

func (e *OtpInvalidCodeError) Error() string {
	if e.Remaining > 0 {
		return fmt.Sprintf("Invalid OTP. %d attempt(s) remaining.", e.Remaining)
	}
	return "Invalid OTP. Please request a new OTP."
}

func (e *OtpInvalidCodeError) Unwrap() error { return ErrBadRequest }
