// Package translation implements the machine translation used by auto-translate.
package translation

import (
	"context"
	"log/slog"
	"strings"

	"agadev/config"
	"agadev/internal/domain/entity"
	"agadev/internal/domain/service"

	"go.uber.org/fx"
)

const (
	ProviderDeepL = "deepl"
	ProviderNone  = "none"
)

// Params defines the parameters required for the translator
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTranslator returns the configured provider. Without an API key every call
// fails with ErrTranslatorDisabled, which callers treat as "leave the field empty".
func NewTranslator(params Params) service.Translator {
	cfg := params.Config.Translation
	if cfg == nil || cfg.APIKey == "" || cfg.APIKey == "demo" {
		params.Logger.Info("Translation provider not configured, auto-translate is disabled")

		return disabledTranslator{}
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderDeepL, "":
		params.Logger.Info("Using DeepL translation provider")

		return NewDeepLTranslator(cfg.APIURL, cfg.APIKey, cfg.Timeout, params.Logger)
	case ProviderNone:
		return disabledTranslator{}
	default:
		params.Logger.Warn("Unknown translation provider, auto-translate is disabled", slog.String("provider", cfg.Provider))

		return disabledTranslator{}
	}
}

type disabledTranslator struct{}

func (disabledTranslator) Translate(context.Context, string, entity.Lang, entity.Lang) (string, error) {
	return "", service.ErrTranslatorDisabled
}
