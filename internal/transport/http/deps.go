package http

import (
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/dynamo"
	jwtinfra "github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/jwt"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/lex"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/polly"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/postgres"
	s3infra "github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/s3"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/ses"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router. Optional
// backends (JWT keys, SES, SNS, Lex, Polly, Postgres, S3) may be nil;
// the affected endpoints then report the service as not configured.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	ProductRepo *dynamo.ProductRepo
	CartRepo    *dynamo.CartRepo
	PaymentRepo *dynamo.PaymentRepo
	OtpRepo     *dynamo.OtpRepo
	OrderRepo   *postgres.OrderRepo
	ImageStore  *s3infra.ImageStore
	Mailer      ses.Mailer
	Publisher   sns.Publisher
	LexClient   *lex.Client
	PollyClient *polly.Client
	JWTProvider *jwtinfra.Provider
}
