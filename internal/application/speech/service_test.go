package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

type mockSynthesizer struct {
	mock.Mock
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	args := m.Called(ctx, text, voiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestSynthesize_DefaultVoice(t *testing.T) {
	tts := new(mockSynthesizer)
	tts.On("Synthesize", mock.Anything, "Hello", "Joanna").Return([]byte("mp3"), nil)

	svc := NewService(tts)
	audio, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), audio)
	tts.AssertExpectations(t)
}

func TestSynthesize_RequiresText(t *testing.T) {
	svc := NewService(new(mockSynthesizer))

	_, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestSynthesize_NotConfigured(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Synthesize(context.Background(), domain.SpeechRequest{Text: "Hello"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotConfigured)
}

func TestVoiceFor(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", "Joanna"},
		{"en_US", "Joanna"},
		{"en-US", "Joanna"}, // hyphen separator normalized
		{"en_GB", "Amy"},
		{"hi-IN", "Aditi"},
		{"es_MX", "Mia"},
		{"ja_JP", "Mizuki"},
		{"zh-CN", "Zhiyu"},
		{"ar_AE", "Zeina"},
		{"ru_RU", "Tatyana"},
		{"en_NZ", "Joanna"},   // language fallback
		{"es-AR", "Conchita"}, // language fallback
		{"zz_ZZ", "Joanna"},   // unknown language
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, voiceFor(tt.locale), "locale %q", tt.locale)
	}
}
