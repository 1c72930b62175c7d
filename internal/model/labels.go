package model

import (
	"strings"
	"unicode"
)

// DisplayLabel returns the explicit label of a field or one derived from its
// name ("passwordConfirm" becomes "Password Confirm").
func DisplayLabel(field Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return LabelFromName(field.Name)
}

// LabelFromName splits a field name on underscores, dashes, spaces and
// camelCase boundaries and title-cases each word.
func LabelFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	segments := make([]string, 0, len(words))
	for _, word := range words {
		for _, part := range splitCamel(word) {
			segments = append(segments, titleCase(part))
		}
	}
	return strings.Join(segments, " ")
}

func splitCamel(word string) []string {
	var (
		parts   []string
		current []rune
	)
	runes := []rune(word)
	for i, r := range runes {
		if i > 0 && isBoundary(runes[i-1], r) {
			parts = append(parts, string(current))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		parts = append(parts, string(current))
	}
	return parts
}

func isBoundary(prev, r rune) bool {
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
