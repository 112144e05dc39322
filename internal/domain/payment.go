package domain

import "time"

// Payment methods.
const (
	PaymentMethodCard       = "card"
	PaymentMethodNetbanking = "netbanking"
	PaymentMethodUPI        = "upi"
)

// Payment is a processed payment record. PK: payment_id.
// The gateway is stubbed: records are written with status "success".
type Payment struct {
	PaymentID   string                 `json:"paymentId" dynamodbav:"payment_id"`
	UserID      string                 `json:"userId" dynamodbav:"user_id"`
	OrderID     string                 `json:"orderId,omitempty" dynamodbav:"order_id,omitempty"`
	Amount      float64                `json:"amount" dynamodbav:"amount"`
	Currency    string                 `json:"currency" dynamodbav:"currency"`
	Method      string                 `json:"method" dynamodbav:"method"`
	Items       []interface{}          `json:"items,omitempty" dynamodbav:"items,omitempty"`
	Status      string                 `json:"status" dynamodbav:"status"`
	Card        *CardDetails           `json:"card,omitempty" dynamodbav:"card,omitempty"`
	Netbanking  *NetbankingDetails     `json:"netbanking,omitempty" dynamodbav:"netbanking,omitempty"`
	UPI         *UPIDetails            `json:"upi,omitempty" dynamodbav:"upi,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty" dynamodbav:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"createdAt" dynamodbav:"created_at"`
	ProcessedAt time.Time              `json:"processedAt" dynamodbav:"processed_at"`
}

// CardDetails keeps only non-sensitive card attributes. The full PAN is
// never persisted.
type CardDetails struct {
	Brand  string `json:"brand" dynamodbav:"brand"`
	Last4  string `json:"last4" dynamodbav:"last4"`
	Holder string `json:"holder" dynamodbav:"holder"`
	Expiry string `json:"expiry" dynamodbav:"expiry"`
}

type NetbankingDetails struct {
	Bank        string `json:"bank" dynamodbav:"bank"`
	AccountName string `json:"accountName" dynamodbav:"account_name"`
}

type UPIDetails struct {
	ID       string `json:"id" dynamodbav:"id"`
	Provider string `json:"provider" dynamodbav:"provider"`
}

type ProcessPaymentRequest struct {
	UserID     string                 `json:"userId"`
	OrderID    string                 `json:"orderId"`
	Amount     float64                `json:"amount"`
	Currency   string                 `json:"currency"`
	Method     string                 `json:"method"`
	Items      []interface{}          `json:"items"`
	Metadata   map[string]interface{} `json:"metadata"`
	Card       *CardInput             `json:"card"`
	Netbanking *NetbankingDetails     `json:"netbanking"`
	UPI        *UPIDetails            `json:"upi"`
}

type CardInput struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	Brand  string `json:"brand"`
}
