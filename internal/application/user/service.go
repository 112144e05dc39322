package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/id"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldLastLoginAt = "last_login_at"
	fieldUpdatedAt   = "updated_at"
)

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error)
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, email string, updates map[string]interface{}) error
}

type TokenSigner interface {
	Sign(userID, email, role string) (string, error)
}

type service struct {
	repo   userStore
	signer TokenSigner // nil when JWT keys are not deployed
}

func NewService(repo userStore, signer TokenSigner) Service {
	return &service{repo: repo, signer: signer}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(&req); err != nil {
		return nil, "", domain.BadRequest(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &domain.User{
		Email:        req.Email,
		UserID:       id.New(),
		Name:         req.Name,
		PasswordHash: string(hash),
		Provider:     "password",
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, "", domain.Conflict("An account with this email already exists")
		}
		return nil, "", err
	}

	token, err := s.sign(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(&req); err != nil {
		return nil, "", domain.BadRequest(err.Error())
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		// Do not disclose whether the account exists.
		return nil, "", domain.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, "", fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", domain.Unauthorized("Invalid email or password")
	}

	now := time.Now().UTC()
	if err := s.repo.Update(ctx, u.Email, map[string]interface{}{
		fieldLastLoginAt: now,
		fieldUpdatedAt:   now,
	}); err != nil {
		return nil, "", fmt.Errorf("record login time: %w", err)
	}
	u.LastLoginAt = &now
	u.UpdatedAt = now

	token, err := s.sign(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) sign(u *domain.User) (string, error) {
	if s.signer == nil {
		return "", nil
	}
	token, err := s.signer.Sign(u.UserID, u.Email, u.Role)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
