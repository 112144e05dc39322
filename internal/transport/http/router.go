package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/cart"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/chat"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/order"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/otp"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/payment"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/product"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/speech"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/user"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/config"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/transport/http/handler"
	appmiddleware "github.com/Bhuvan-2005/exomart-ecommerce/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpSvc := otp.NewService(deps.OtpRepo, deps.Mailer)
	userSvc := user.NewService(deps.UserRepo, signerOrNil(deps))
	productSvc := product.NewService(deps.ProductRepo, imageStoreOrNil(deps))
	cartSvc := cart.NewService(deps.CartRepo)
	orderSvc := order.NewService(orderStoreOrNil(deps), deps.Publisher)
	paymentSvc := payment.NewService(deps.PaymentRepo)
	chatSvc := chat.NewService(recognizerOrNil(deps), cfg.LexLocaleID)
	speechSvc := speech.NewService(synthesizerOrNil(deps))

	healthH := handler.NewHealthHandler()
	otpH := handler.NewOtpHandler(otpSvc)
	authH := handler.NewAuthHandler(userSvc)
	productH := handler.NewProductHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	chatH := handler.NewChatHandler(chatSvc)
	speechH := handler.NewSpeechHandler(speechSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/otp/send", otpH.Send)
		r.With(sensitiveRL.Limit).Post("/otp/verify", otpH.Verify)
		r.With(sensitiveRL.Limit).Post("/auth/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)
		r.Get("/products", productH.List)
		r.Get("/products/{id}", productH.Get)
		r.Post("/chat", chatH.Message)
		r.Post("/speech", speechH.Synthesize)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/cart", cartH.Add)
			r.Get("/cart/{userId}", cartH.Get)
			r.Delete("/cart/{userId}/{productId}", cartH.Remove)

			r.Post("/orders", orderH.Create)
			r.Get("/orders", orderH.List)

			r.Post("/payments", paymentH.Process)
			r.Get("/payments/{id}", paymentH.Get)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Post("/products", productH.Create)
				r.Put("/products/{id}", productH.Update)
				r.Delete("/products/{id}", productH.Delete)
				r.Post("/products/{id}/image", productH.UploadImage)
			})
		})
	})

	return r
}

// The *OrNil helpers keep typed-nil infrastructure pointers out of the
// service interfaces, so the services' nil checks stay meaningful.

func signerOrNil(deps *Deps) user.TokenSigner {
	if deps.JWTProvider == nil {
		return nil
	}
	return deps.JWTProvider
}

func imageStoreOrNil(deps *Deps) product.ImageStore {
	if deps.ImageStore == nil {
		return nil
	}
	return deps.ImageStore
}

func orderStoreOrNil(deps *Deps) order.Store {
	if deps.OrderRepo == nil {
		return nil
	}
	return deps.OrderRepo
}

func recognizerOrNil(deps *Deps) chat.Recognizer {
	if deps.LexClient == nil {
		return nil
	}
	return deps.LexClient
}

func synthesizerOrNil(deps *Deps) speech.Synthesizer {
	if deps.PollyClient == nil {
		return nil
	}
	return deps.PollyClient
}
