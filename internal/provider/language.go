package provider

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CommonLanguages are listed first wherever a speech language is picked.
// Any ISO-639-1 code is accepted in config.
var CommonLanguages = []string{"en", "es", "fr", "de", "it", "pt", "nl", "pl", "ja", "ko", "zh", "ru"}

// LanguageLabel names a transcription language: "es" -> "Spanish (es)",
// "" -> "Auto-detect". Codes x/text cannot name are quoted back.
func LanguageLabel(code string) string {
	if code == "" {
		return "Auto-detect"
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return fmt.Sprintf("language '%s'", code)
	}
	if name := display.English.Tags().Name(tag); name != "" && !strings.EqualFold(name, code) {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return fmt.Sprintf("language '%s'", code)
}

// IsValidLanguageCode reports whether code is a lowercase two-letter
// ISO-639-1 code. The empty string means auto-detect and is valid.
func IsValidLanguageCode(code string) bool {
	if code == "" {
		return true
	}
	if len(code) != 2 || strings.ToLower(code) != code {
		return false
	}
	base, err := language.ParseBase(code)
	return err == nil && base.String() == code
}
