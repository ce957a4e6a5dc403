package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum   = regexp.MustCompile(`[^A-Za-z0-9]+`)
	camelSplit = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// RemoveAccents converts accented characters to their base forms.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// SplitWords splits a string into words, handling camelCase, PascalCase,
// snake_case, and kebab-case.
func SplitWords(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = RemoveAccents(s)

	// Insert a separator at each lower-to-upper boundary, then split on
	// everything non-alphanumeric.
	s = camelSplit.ReplaceAllString(s, "$1 $2")
	parts := nonAlnum.Split(s, -1)

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// SplitCamelCase splits a camelCase or PascalCase string into words. Unlike
// SplitWords it keeps acronym runs together: "XMLHttp" becomes ["XML", "Http"].
func SplitCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var parts []string
	var current strings.Builder

	rs := []rune(s)
	for i, r := range rs {
		isNewWord := false
		if i > 0 && isUppercase(r) {
			if !isUppercase(rs[i-1]) {
				isNewWord = true
			} else if i < len(rs)-1 && !isUppercase(rs[i+1]) {
				isNewWord = true
			}
		}

		if isNewWord && current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

func isUppercase(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// splitWordsAdvanced splits on non-alphanumeric characters first, then
// further splits each piece with the acronym-aware camel splitter.
func splitWordsAdvanced(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = RemoveAccents(s)

	var allParts []string
	for _, part := range nonAlnum.Split(s, -1) {
		if part == "" {
			continue
		}
		allParts = append(allParts, SplitCamelCase(part)...)
	}
	return allParts
}

func joinCapitalized(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		if len(p) > 1 {
			b.WriteString(strings.ToLower(p[1:]))
		}
	}
	return b.String()
}

// ToPascalCase converts a string to PascalCase.
func ToPascalCase(s string) string {
	return joinCapitalized(SplitWords(s))
}

// ToPascalCaseAdvanced converts a string to PascalCase using the
// acronym-aware splitter.
func ToPascalCaseAdvanced(s string) string {
	return joinCapitalized(splitWordsAdvanced(s))
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return ""
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return joinLower(SplitWords(s), "_")
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	return joinLower(SplitWords(s), "-")
}

func joinLower(parts []string, sep string) string {
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return strings.Join(parts, sep)
}
