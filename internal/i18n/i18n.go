// Package i18n provides internationalization support for the replenishment
// service. It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "fr-FR,fr;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":            "Invalid request",
			"error.invalid_request_body":       "Invalid request body",
			"error.internal_error":             "An unexpected error occurred",
			"error.not_found":                  "Not found",
			"error.rate_limit_exceeded":        "Too many requests, please try again later",
			"error.timeout":                    "Request timed out",
			"error.store_unavailable":          "Dataset storage is temporarily unavailable",
			"error.no_order_data":              "No order dataset has been uploaded",
			"error.empty_after_filter":         "The packaging filter excludes every order row",
			"error.no_configured_combinations": "No order row matches the configured depot-article combinations",
			"error.missing_depot_name":         "A depot name is required",
			"error.invalid_upload":             "The uploaded file is malformed or misses required columns",

			// Success messages
			"success.calculated": "Replenishment calculation completed successfully",
			"success.uploaded":   "Dataset uploaded successfully",
		},
		"fr": {
			// Error messages
			"error.invalid_request":            "Requête invalide",
			"error.invalid_request_body":       "Corps de requête invalide",
			"error.internal_error":             "Une erreur inattendue est survenue",
			"error.not_found":                  "Introuvable",
			"error.rate_limit_exceeded":        "Trop de requêtes, veuillez réessayer plus tard",
			"error.timeout":                    "Délai de la requête dépassé",
			"error.store_unavailable":          "Le stockage des données est temporairement indisponible",
			"error.no_order_data":              "Aucun fichier de commandes n'a été chargé",
			"error.empty_after_filter":         "Le filtre de conditionnement exclut toutes les lignes de commande",
			"error.no_configured_combinations": "Aucune ligne de commande ne correspond aux combinaisons dépôt-article configurées",
			"error.missing_depot_name":         "Un nom de dépôt est requis",
			"error.invalid_upload":             "Le fichier chargé est invalide ou des colonnes obligatoires sont manquantes",

			// Success messages
			"success.calculated": "Calcul de réapprovisionnement terminé avec succès",
			"success.uploaded":   "Fichier chargé avec succès",
		},
	}
}
