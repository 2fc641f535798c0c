// File: internal/translation/google.go
package translation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"caffind_backend/internal/config"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleEngine translates through the Cloud Translation v2 API.
type GoogleEngine struct {
	client *translate.Client
	logger *zap.Logger
}

// NewGoogleEngine builds the client once for the process lifetime.
// Credentials come from TRANSLATE_API_KEY, then TRANSLATE_CREDENTIALS_PATH, then
// Application Default Credentials. Extra options are appended last.
func NewGoogleEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger, extra ...option.ClientOption) (*GoogleEngine, error) {
	logger = logger.Named("GoogleTranslate")

	var opts []option.ClientOption
	switch {
	case cfg.TranslateAPIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.TranslateAPIKey))
		logger.Info("Using API key for translation client")
	case cfg.TranslateCredentialsPath != "":
		if _, err := os.Stat(cfg.TranslateCredentialsPath); err != nil {
			return nil, fmt.Errorf("translation credentials file not found at %s: %w", cfg.TranslateCredentialsPath, err)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.TranslateCredentialsPath))
		logger.Info("Using service account file for translation client", zap.String("path", cfg.TranslateCredentialsPath))
	default:
		logger.Info("No translation credentials configured, using Application Default Credentials")
	}
	if cfg.TranslateEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.TranslateEndpoint))
	}
	opts = append(opts, extra...)

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	return &GoogleEngine{client: client, logger: logger}, nil
}

// Translate sends one text to the engine. When the engine reports no detected language
// the requested source (or AutoDetect) is returned.
func (e *GoogleEngine) Translate(ctx context.Context, text, target, source string) (*Result, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid target language %q: %w", target, err)
	}

	opts := &translate.Options{Format: translate.Text}
	if source != "" && source != AutoDetect {
		sourceTag, err := language.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("invalid source language %q: %w", source, err)
		}
		opts.Source = sourceTag
	}

	translations, err := e.client.Translate(ctx, []string{text}, targetTag, opts)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, errors.New("no translation returned")
	}

	detected := translations[0].Source.String()
	if translations[0].Source == language.Und {
		detected = source
		if detected == "" {
			detected = AutoDetect
		}
	}
	return &Result{Text: translations[0].Text, Source: detected, Target: target}, nil
}

// Close releases the underlying client.
func (e *GoogleEngine) Close() error {
	return e.client.Close()
}
