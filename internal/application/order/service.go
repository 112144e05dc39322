package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/id"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type Store interface {
	Create(ctx context.Context, o *domain.Order) error
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, subject, message string) error
}

type service struct {
	repo      Store
	publisher eventPublisher // nil when no topic is configured
}

func NewService(repo Store, publisher eventPublisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	if s.repo == nil {
		return nil, domain.NotConfigured("Order service is not configured. Please contact support.")
	}

	o := &domain.Order{
		ID:          id.New(),
		UserID:      req.UserID,
		TotalAmount: req.TotalAmount,
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The notification is best effort; the order stands even if the topic
	// is unreachable.
	if s.publisher != nil {
		payload, _ := json.Marshal(o)
		if err := s.publisher.Publish(ctx, "order.created", string(payload)); err != nil {
			slog.Warn("could not publish order event", "order_id", o.ID, "err", err)
		}
	}
	return o, nil
}

func (s *service) List(ctx context.Context) ([]domain.Order, error) {
	if s.repo == nil {
		return nil, domain.NotConfigured("Order service is not configured. Please contact support.")
	}
	return s.repo.ListAll(ctx)
}
