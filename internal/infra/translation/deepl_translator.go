package translation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agadev/internal/domain/entity"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
)

const (
	defaultDeepLURL = "https://api-free.deepl.com/v2/translate"
	defaultTimeout  = 10 * time.Second
	maxErrorBody    = 512
)

// deeplTranslator calls the DeepL v2 translate endpoint.
type deeplTranslator struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// NewDeepLTranslator creates a DeepL client. Empty endpoint means the free API.
func NewDeepLTranslator(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) service.Translator {
	if endpoint == "" {
		endpoint = defaultDeepLURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &deeplTranslator{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Translate sends text as HTML so markup in rich-text fields survives.
func (t *deeplTranslator) Translate(ctx context.Context, text string, source, target entity.Lang) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("source_lang", deeplSourceCode(source))
	form.Set("target_lang", deeplTargetCode(target))
	form.Set("preserve_formatting", "1")
	form.Set("tag_handling", "html")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "deepl request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return "", errors.Errorf("deepl returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload deeplResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrap(err, "decode deepl response")
	}
	if len(payload.Translations) == 0 {
		return "", errors.New("deepl returned no translation")
	}

	t.logger.DebugContext(ctx, "Text translated",
		slog.String("source", string(source)),
		slog.String("target", string(target)),
		slog.Int("length", len(text)),
	)

	return payload.Translations[0].Text, nil
}

func deeplSourceCode(lang entity.Lang) string {
	return strings.ToUpper(string(lang))
}

// DeepL requires a regional variant for English targets.
func deeplTargetCode(lang entity.Lang) string {
	if lang == entity.LangEN {
		return "EN-US"
	}

	return strings.ToUpper(string(lang))
}
