package domain

type SpeechRequest struct {
	Text     string `json:"text"`
	Locale   string `json:"locale"`
	Language string `json:"language"`
}
