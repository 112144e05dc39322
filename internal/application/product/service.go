package product

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/id"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/pkg/validate"
)

// PlaceholderImage is used when a product is created without any image.
const PlaceholderImage = "https://via.placeholder.com/400/667eea/ffffff?text=ExoMart"

// DynamoDB attribute names used in partial update maps.
const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldPrice       = "price"
	fieldCategory    = "category"
	fieldImage       = "image"
	fieldImages      = "images"
	fieldStock       = "stock"
	fieldUpdatedAt   = "updated_at"
)

type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Create(ctx context.Context, payload domain.ProductPayload) (*domain.Product, error)
	Update(ctx context.Context, productID string, payload domain.ProductPayload) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
	UploadImage(ctx context.Context, productID, filename string, data io.Reader, contentType string) (*domain.Product, error)
}

type productStore interface {
	Put(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Scan(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, productID string, updates map[string]interface{}) error
	Delete(ctx context.Context, productID string) error
}

type ImageStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	repo   productStore
	images ImageStore // nil when S3 is not configured
}

func NewService(repo productStore, images ImageStore) Service {
	return &service{repo: repo, images: images}
}

func (s *service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.Get(ctx, productID)
}

func (s *service) Create(ctx context.Context, payload domain.ProductPayload) (*domain.Product, error) {
	if err := validate.Struct(&payload); err != nil {
		return nil, domain.BadRequest(err.Error())
	}

	mainImage, images := normalizeImages(payload)
	stock := payload.Stock
	if stock <= 0 {
		stock = 100
	}

	p := &domain.Product{
		ProductID:   id.New(),
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Image:       mainImage,
		Images:      images,
		Stock:       stock,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("store product: %w", err)
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, productID string, payload domain.ProductPayload) (*domain.Product, error) {
	if err := validate.Struct(&payload); err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return nil, err
	}

	mainImage, images := normalizeImages(payload)
	err := s.repo.Update(ctx, productID, map[string]interface{}{
		fieldName:        payload.Name,
		fieldDescription: payload.Description,
		fieldPrice:       payload.Price,
		fieldCategory:    payload.Category,
		fieldImage:       mainImage,
		fieldImages:      images,
		fieldStock:       payload.Stock,
		fieldUpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.repo.Get(ctx, productID)
}

func (s *service) Delete(ctx context.Context, productID string) error {
	p, err := s.repo.Get(ctx, productID)
	if err != nil {
		return err
	}
	if s.images != nil {
		// Best-effort cleanup of uploaded images; the record is removed
		// even when the bucket delete fails.
		for _, url := range dedupe(append([]string{p.Image}, p.Images...)) {
			key, ok := uploadedImageKey(url)
			if !ok {
				continue
			}
			if err := s.images.Delete(ctx, key); err != nil {
				slog.Warn("delete product image", "product_id", productID, "key", key, "error", err)
			}
		}
	}
	return s.repo.Delete(ctx, productID)
}

// uploadedImageKey extracts the object key from URLs produced by UploadImage.
// External image URLs are left alone.
func uploadedImageKey(url string) (string, bool) {
	i := strings.Index(url, "/products/")
	if i < 0 {
		return "", false
	}
	return url[i+1:], true
}

func (s *service) UploadImage(ctx context.Context, productID, filename string, data io.Reader, contentType string) (*domain.Product, error) {
	if s.images == nil {
		return nil, domain.NotConfigured("Image storage is not configured. Please contact support.")
	}
	p, err := s.repo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s", productID, filename)
	url, err := s.images.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}

	images := dedupe(append([]string{url}, p.Images...))
	if err := s.repo.Update(ctx, productID, map[string]interface{}{
		fieldImage:     url,
		fieldImages:    images,
		fieldUpdatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("attach product image: %w", err)
	}
	p.Image = url
	p.Images = images
	return p, nil
}

// normalizeImages merges the image, images and gallery fields into a main
// image plus a deduped gallery. Array and comma-separated string forms are
// both accepted; the placeholder is used when nothing usable remains.
func normalizeImages(payload domain.ProductPayload) (string, []string) {
	raw := append(toStringSlice(payload.Images), toStringSlice(payload.Gallery)...)

	cleaned := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			cleaned = append(cleaned, u)
		}
	}

	main := strings.TrimSpace(payload.Image)
	if main == "" && len(cleaned) > 0 {
		main = cleaned[0]
	}
	if main == "" {
		main = PlaceholderImage
	}

	return main, dedupe(append([]string{main}, cleaned...))
}

// toStringSlice accepts a JSON array of strings or a comma-separated string.
func toStringSlice(v interface{}) []string {
	switch val := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	case string:
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
