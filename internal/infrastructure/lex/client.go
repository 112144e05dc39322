package lex

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2/types"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/config"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// Client proxies utterances to an Amazon Lex V2 bot.
type Client struct {
	api        *lexruntimev2.Client
	botID      string
	botAliasID string
}

// NewClient creates a Lex client bound to the configured bot and alias.
// Returns domain.ErrServiceNotConfigured when the bot is not configured,
// so the caller can degrade gracefully.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.LexBotID == "" || cfg.LexBotAliasID == "" {
		return nil, fmt.Errorf("LEX_BOT_ID and LEX_BOT_ALIAS_ID not set: %w", domain.ErrServiceNotConfigured)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:        lexruntimev2.NewFromConfig(awsCfg),
		botID:      cfg.LexBotID,
		botAliasID: cfg.LexBotAliasID,
	}, nil
}

// Recognize sends one utterance and flattens the bot's reply into a ChatResult.
func (c *Client) Recognize(ctx context.Context, sessionID, localeID, text string) (*domain.ChatResult, error) {
	out, err := c.api.RecognizeText(ctx, &lexruntimev2.RecognizeTextInput{
		BotId:      aws.String(c.botID),
		BotAliasId: aws.String(c.botAliasID),
		LocaleId:   aws.String(localeID),
		SessionId:  aws.String(sessionID),
		Text:       aws.String(text),
	})
	if err != nil {
		var ve *types.ValidationException
		if errors.As(err, &ve) {
			return nil, domain.BadRequest("Invalid request. Please try rephrasing your question.")
		}
		var nfe *types.ResourceNotFoundException
		if errors.As(err, &nfe) {
			return nil, domain.NotFound("Chat bot not found. Please contact support.")
		}
		return nil, fmt.Errorf("lex recognize text: %w", err)
	}

	result := &domain.ChatResult{SessionID: sessionID}

	if len(out.Messages) > 0 && out.Messages[0].Content != nil {
		result.Message = *out.Messages[0].Content
	}
	if len(out.Interpretations) > 0 && out.Interpretations[0].Intent != nil {
		intent := out.Interpretations[0].Intent
		if intent.Name != nil {
			result.Intent = *intent.Name
		}
		result.Slots = flattenSlots(intent.Slots)
	}
	if out.SessionState != nil && out.SessionState.DialogAction != nil {
		result.DialogState = string(out.SessionState.DialogAction.Type)
	}
	return result, nil
}

// flattenSlots reduces Lex slot structures to originalValue strings.
func flattenSlots(slots map[string]types.Slot) map[string]string {
	if len(slots) == 0 {
		return nil
	}
	flat := make(map[string]string, len(slots))
	for name, slot := range slots {
		if slot.Value != nil && slot.Value.OriginalValue != nil {
			flat[name] = *slot.Value.OriginalValue
		}
	}
	return flat
}
