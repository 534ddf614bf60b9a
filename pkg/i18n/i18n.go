package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message IDs for a requested language.
type Translator struct {
	bundle *goi18n.Bundle
}

// New builds a Translator with the embedded English and French catalogs.
// defaultLang is used when the requested language has no catalog.
func New(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		tag = language.English
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range []string{"locales/active.en.json", "locales/active.fr.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// LoadFile adds an external message file, e.g. to override embedded wording.
func (t *Translator) LoadFile(path string) error {
	_, err := t.bundle.LoadMessageFile(path)
	return err
}

// Localize renders messageID in the best match for langs (Accept-Language values).
// It falls back to fallback when the message is unknown.
func (t *Translator) Localize(messageID string, params map[string]interface{}, fallback string, langs ...string) string {
	if messageID == "" {
		return fallback
	}
	localizer := goi18n.NewLocalizer(t.bundle, langs...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: params,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
