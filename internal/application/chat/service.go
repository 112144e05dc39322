package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

const fallbackMessage = "I apologize, but I couldn't process that request."

type Service interface {
	Message(ctx context.Context, req domain.ChatRequest) (*domain.ChatResult, error)
}

type Recognizer interface {
	Recognize(ctx context.Context, sessionID, localeID, text string) (*domain.ChatResult, error)
}

type service struct {
	bot           Recognizer // nil when the bot is not configured
	defaultLocale string
	now           func() time.Time
}

func NewService(bot Recognizer, defaultLocale string) Service {
	return &service{bot: bot, defaultLocale: defaultLocale, now: time.Now}
}

func (s *service) Message(ctx context.Context, req domain.ChatRequest) (*domain.ChatResult, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, domain.BadRequest("Message is required")
	}
	if s.bot == nil {
		return nil, domain.NotConfigured("Chat service is not configured. Please contact support.")
	}

	locale := req.Locale
	if locale == "" {
		locale = s.defaultLocale
	}
	sessionID := req.SessionID
	if sessionID == "" {
		userID := req.UserID
		if userID == "" {
			userID = "guest"
		}
		sessionID = fmt.Sprintf("exomart-%s-%d", userID, s.now().UnixMilli())
	}

	result, err := s.bot.Recognize(ctx, sessionID, locale, text)
	if err != nil {
		return nil, err
	}

	if result.Message == "" {
		result.Message = fallbackMessage
	}
	applyIntentFallback(result)
	result.IsElicitingSlot = result.DialogState == domain.DialogStateElicitSlot
	result.IsConfirmingIntent = result.DialogState == domain.DialogStateConfirmIntent
	result.IsReadyForFulfillment = result.DialogState == domain.DialogStateReadyForFulfillment
	return result, nil
}

// applyIntentFallback substitutes friendlier copy when the bot recognised
// an intent and slot but produced no usable reply of its own.
func applyIntentFallback(result *domain.ChatResult) {
	if result.Message != fallbackMessage {
		return
	}
	product := result.Slots["ProductName"]
	if product == "" {
		product = result.Slots["productName"]
	}
	if product == "" {
		return
	}
	switch result.Intent {
	case "AddToCart":
		result.Message = fmt.Sprintf("Got it! I'll help you add %s to your cart.", product)
	case "RemoveFromCart":
		result.Message = fmt.Sprintf("I'll remove %s from your cart.", product)
	case "AddToWishlist":
		result.Message = fmt.Sprintf("I'll add %s to your wishlist.", product)
	case "SearchProducts":
		result.Message = fmt.Sprintf("I'll search for %s for you.", product)
	}
}
