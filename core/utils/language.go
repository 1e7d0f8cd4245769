package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// MaxLanguageLength is the width of the persisted language column.
const MaxLanguageLength = 10

// NormalizeLanguage trims and lower-cases a language code and checks that it parses.
func NormalizeLanguage(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("empty language code")
	}
	if len(code) > MaxLanguageLength {
		return "", fmt.Errorf("language code %q exceeds %d characters", code, MaxLanguageLength)
	}
	if _, err := language.Parse(code); err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return code, nil
}

// NormalizeLanguages normalizes every code and drops duplicates, keeping first-seen order.
// Entries may themselves be comma-separated lists ("en,tr").
func NormalizeLanguages(codes []string) ([]string, error) {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, entry := range codes {
		for _, raw := range strings.Split(entry, ",") {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			code, err := NormalizeLanguage(raw)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	return out, nil
}

// ShortLanguage reduces a caller language to its two-letter lower-case prefix.
// Values shorter than two characters yield "".
func ShortLanguage(code string) string {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return ""
	}
	return strings.ToLower(code[:2])
}

// PreferredLanguage returns the base language of the highest weighted entry
// of an Accept-Language header, or "" when the header is empty or malformed.
func PreferredLanguage(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return ""
	}
	base, conf := tags[0].Base()
	if conf == language.No {
		return ""
	}
	return ShortLanguage(base.String())
}
