package order

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Create(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockOrderStore) ListAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, subject, message string) error {
	return m.Called(ctx, subject, message).Error(0)
}

func TestCreate_PendingOrderAndEvent(t *testing.T) {
	store := &mockOrderStore{}
	pub := &mockPublisher{}
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	var published string
	pub.On("Publish", mock.Anything, "order.created", mock.Anything).Run(func(args mock.Arguments) {
		published = args.String(2)
	}).Return(nil)

	svc := NewService(store, pub)
	o, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		UserID: "u1", TotalAmount: 249.99,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, domain.OrderStatusPending, o.Status)

	var event domain.Order
	require.NoError(t, json.Unmarshal([]byte(published), &event))
	assert.Equal(t, o.ID, event.ID)
	assert.Equal(t, 249.99, event.TotalAmount)
}

func TestCreate_PublishFailureDoesNotFailOrder(t *testing.T) {
	store := &mockOrderStore{}
	pub := &mockPublisher{}
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sns down"))

	svc := NewService(store, pub)
	_, err := svc.Create(context.Background(), domain.CreateOrderRequest{UserID: "u1", TotalAmount: 10})

	assert.NoError(t, err)
}

func TestCreate_NoPublisherConfigured(t *testing.T) {
	store := &mockOrderStore{}
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, nil)
	_, err := svc.Create(context.Background(), domain.CreateOrderRequest{UserID: "u1", TotalAmount: 10})

	assert.NoError(t, err)
}

func TestCreate_InvalidAmount(t *testing.T) {
	svc := NewService(&mockOrderStore{}, nil)
	_, err := svc.Create(context.Background(), domain.CreateOrderRequest{UserID: "u1", TotalAmount: 0})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
