// File: internal/translation/model.go
package translation

// DefaultTarget is used when a request names no target language.
const DefaultTarget = "en"

// AutoDetect asks the engine to detect the source language.
const AutoDetect = "auto"

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text   string  `json:"text" binding:"required,min=1"`
	Target *string `json:"target" binding:"omitempty,min=2,max=5"`
	Source *string `json:"source" binding:"omitempty,min=2,max=5"`
}

// TranslateResponse is the body returned by POST /translate.
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	DetectedSource string `json:"detected_source"`
	Target         string `json:"target"`
}
