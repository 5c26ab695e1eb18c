package i18n

import (
	"os"
	"strings"
)

const (
	LanguageEnglish = "en"
	LanguageFrench  = "fr"
)

// DetectLanguage picks the catalog language from the process locale
// environment, falling back to English for anything unrecognized.
func DetectLanguage() string {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGE", "LANG"} {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		value = strings.ToLower(value)
		if strings.HasPrefix(value, "fr") {
			return LanguageFrench
		}
		if strings.HasPrefix(value, "en") {
			return LanguageEnglish
		}
	}
	return LanguageEnglish
}

// Catalog is a pure key to string lookup with {name} parameter substitution.
// The language is fixed at construction time; components receive the catalog
// by injection and never mutate it.
type Catalog struct {
	lang string
}

func NewCatalog(lang string) *Catalog {
	lang = strings.ToLower(lang)
	if !strings.HasPrefix(lang, LanguageFrench) && !strings.HasPrefix(lang, LanguageEnglish) {
		lang = LanguageEnglish
	} else {
		lang = lang[:2]
	}
	return &Catalog{lang: lang}
}

func (c *Catalog) Language() string { return c.lang }

// T returns the translation for key, with args given as alternating
// name/value pairs substituted for {name} placeholders. Missing keys fall
// back to English, then to the key itself.
func (c *Catalog) T(key string, args ...string) string {
	msg, found := translations[c.lang][key]
	if !found {
		msg, found = translations[LanguageEnglish][key]
	}
	if !found {
		return key
	}
	if len(args) < 2 {
		return msg
	}

	oldnew := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		oldnew = append(oldnew, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(oldnew...).Replace(msg)
}
