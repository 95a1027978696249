// Package i18n translates field and selection labels.
package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-partytype/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Translator resolves translation keys for one language.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	languages []string
}

// New loads the embedded locales and selects lang, falling back to
// config.DefaultLanguage when lang is empty.
func New(lang string) *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tr := &Translator{bundle: bundle}

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if code == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		tr.languages = append(tr.languages, code)
	}

	tr.SetLanguage(lang)
	return tr
}

// Languages lists the language codes that loaded successfully.
func (tr *Translator) Languages() []string {
	return tr.languages
}

// SetLanguage switches the active language.
func (tr *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	slog.Debug(config.MsgLocaleLoaded,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, lang,
	)
	tr.localizer = goi18n.NewLocalizer(tr.bundle, lang)
}

// Msg translates key, returning the key itself when no translation exists.
func (tr *Translator) Msg(key string) string {
	if tr == nil || tr.localizer == nil {
		return key
	}
	msg, err := tr.localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
