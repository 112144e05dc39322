package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/validate"
)

type Service interface {
	Add(ctx context.Context, req domain.AddCartItemRequest) (*domain.CartItem, error)
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	Remove(ctx context.Context, userID, productID string) error
}

type cartStore interface {
	Put(ctx context.Context, item *domain.CartItem) error
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Delete(ctx context.Context, userID, productID string) error
}

type service struct {
	repo cartStore
}

func NewService(repo cartStore) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, req domain.AddCartItemRequest) (*domain.CartItem, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	item := &domain.CartItem{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		AddedAt:   time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, item); err != nil {
		return nil, fmt.Errorf("store cart item: %w", err)
	}
	return item, nil
}

func (s *service) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if userID == "" {
		return nil, domain.BadRequest("userId is required")
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID, productID string) error {
	if userID == "" || productID == "" {
		return domain.BadRequest("userId and productId are required")
	}
	return s.repo.Delete(ctx, userID, productID)
}
