package speech

import (
	"context"
	"strings"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

const defaultVoice = "Joanna"

// voiceByLocale maps locales to Polly voice IDs. Keys use the
// underscore form; voiceFor normalizes hyphenated input.
var voiceByLocale = map[string]string{
	"en_US": "Joanna",
	"en_GB": "Amy",
	"es_ES": "Conchita",
	"es_MX": "Mia",
	"fr_FR": "Celine",
	"de_DE": "Marlene",
	"it_IT": "Carla",
	"pt_BR": "Camila",
	"hi_IN": "Aditi",
	"ja_JP": "Mizuki",
	"ko_KR": "Seoyeon",
	"zh_CN": "Zhiyu",
	"ar_AE": "Zeina",
	"ru_RU": "Tatyana",
}

// voiceByLanguage backs locales with no exact match, keyed by language prefix.
var voiceByLanguage = map[string]string{
	"en": "Joanna",
	"es": "Conchita",
	"fr": "Celine",
	"de": "Marlene",
	"it": "Carla",
	"pt": "Camila",
	"hi": "Aditi",
	"ja": "Mizuki",
	"ko": "Seoyeon",
	"zh": "Zhiyu",
	"ar": "Zeina",
	"ru": "Tatyana",
}

type Service interface {
	Synthesize(ctx context.Context, req domain.SpeechRequest) ([]byte, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

type service struct {
	tts Synthesizer
}

func NewService(tts Synthesizer) Service {
	return &service{tts: tts}
}

func (s *service) Synthesize(ctx context.Context, req domain.SpeechRequest) ([]byte, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, domain.BadRequest("Text is required")
	}
	if s.tts == nil {
		return nil, domain.NotConfigured("Speech service is not configured. Please contact support.")
	}

	locale := req.Locale
	if locale == "" {
		locale = req.Language
	}
	return s.tts.Synthesize(ctx, text, voiceFor(locale))
}

// voiceFor resolves a locale to a voice, falling back to any voice that
// shares the language prefix, then to the default.
func voiceFor(locale string) string {
	if locale == "" {
		return defaultVoice
	}
	locale = strings.ReplaceAll(locale, "-", "_")
	if v, ok := voiceByLocale[locale]; ok {
		return v
	}
	prefix := locale
	if i := strings.IndexByte(locale, '_'); i > 0 {
		prefix = locale[:i]
	}
	if v, ok := voiceByLanguage[strings.ToLower(prefix)]; ok {
		return v
	}
	return defaultVoice
}
