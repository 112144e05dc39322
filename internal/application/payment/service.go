package payment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/id"
)

type Service interface {
	Process(ctx context.Context, req domain.ProcessPaymentRequest) (*domain.Payment, error)
	Get(ctx context.Context, paymentID string) (*domain.Payment, error)
}

type paymentStore interface {
	Put(ctx context.Context, p *domain.Payment) error
	Get(ctx context.Context, paymentID string) (*domain.Payment, error)
}

type service struct {
	repo paymentStore
}

func NewService(repo paymentStore) Service {
	return &service{repo: repo}
}

// Process validates and records a payment. The gateway is stubbed: every
// accepted payment is persisted with status "success".
func (s *service) Process(ctx context.Context, req domain.ProcessPaymentRequest) (*domain.Payment, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, domain.BadRequest("userId is required")
	}

	amount := sanitizeAmount(req.Amount)
	if amount <= 0 {
		return nil, domain.BadRequest("Valid amount is required")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}
	if currency != "INR" {
		return nil, domain.BadRequest("Only INR payments are supported")
	}

	method := strings.ToLower(strings.TrimSpace(req.Method))
	if method == "" {
		method = domain.PaymentMethodCard
	}

	now := time.Now().UTC()
	p := &domain.Payment{
		PaymentID:   id.New(),
		UserID:      userID,
		OrderID:     strings.TrimSpace(req.OrderID),
		Amount:      amount,
		Currency:    currency,
		Method:      method,
		Items:       req.Items,
		Status:      "success",
		Metadata:    req.Metadata,
		CreatedAt:   now,
		ProcessedAt: now,
	}

	switch method {
	case domain.PaymentMethodCard:
		details, err := validateCard(req.Card)
		if err != nil {
			return nil, err
		}
		p.Card = details
	case domain.PaymentMethodNetbanking:
		details, err := validateNetbanking(req.Netbanking)
		if err != nil {
			return nil, err
		}
		p.Netbanking = details
	case domain.PaymentMethodUPI:
		details, err := validateUPI(req.UPI)
		if err != nil {
			return nil, err
		}
		p.UPI = details
	default:
		return nil, domain.BadRequest("Invalid payment method. Supported: card, netbanking, upi")
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, domain.BadRequest("paymentId is required")
	}
	return s.repo.Get(ctx, paymentID)
}

// sanitizeAmount rounds to two decimal places; non-finite input becomes 0.
func sanitizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Round(amount*100) / 100
}

func validateCard(card *domain.CardInput) (*domain.CardDetails, error) {
	if card == nil {
		return nil, domain.BadRequest("Complete card details are required")
	}
	number := strings.ReplaceAll(card.Number, " ", "")
	holder := strings.TrimSpace(card.Name)
	expiry := strings.TrimSpace(card.Expiry)
	if holder == "" || len(number) < 12 || expiry == "" {
		return nil, domain.BadRequest("Complete card details are required")
	}
	brand := card.Brand
	if brand == "" {
		brand = "Card"
	}
	// Only the trailing digits are persisted.
	return &domain.CardDetails{
		Brand:  brand,
		Last4:  number[len(number)-4:],
		Holder: holder,
		Expiry: expiry,
	}, nil
}

func validateNetbanking(nb *domain.NetbankingDetails) (*domain.NetbankingDetails, error) {
	if nb == nil || strings.TrimSpace(nb.Bank) == "" || strings.TrimSpace(nb.AccountName) == "" {
		return nil, domain.BadRequest("Bank selection and account holder name are required")
	}
	return &domain.NetbankingDetails{
		Bank:        strings.TrimSpace(nb.Bank),
		AccountName: strings.TrimSpace(nb.AccountName),
	}, nil
}

func validateUPI(upi *domain.UPIDetails) (*domain.UPIDetails, error) {
	if upi == nil || strings.TrimSpace(upi.ID) == "" || strings.TrimSpace(upi.Provider) == "" {
		return nil, domain.BadRequest("UPI ID and provider are required")
	}
	return &domain.UPIDetails{
		ID:       strings.TrimSpace(upi.ID),
		Provider: strings.TrimSpace(upi.Provider),
	}, nil
}
