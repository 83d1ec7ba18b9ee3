package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CollapseSpaces folds runs of whitespace into single spaces and trims the
// result. Pasted listings frequently mix tabs, non-breaking spaces, and
// ordinary spaces inside a single field.
func CollapseSpaces(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	prevSpace := false
	for _, r := range value {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return strings.TrimSpace(b.String())
}

// FlipComma rewrites a "Last, First" name into "First Last". Only the first
// two comma-separated segments participate; anything after a second comma is
// dropped. Names without a comma pass through unchanged.
func FlipComma(name string) string {
	if !strings.Contains(name, ",") {
		return name
	}
	parts := strings.Split(name, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	if len(parts) < 2 || parts[1] == "" {
		return name
	}
	return parts[1] + " " + parts[0]
}

var titleCaser = cases.Title(language.Und)

// TitleWords re-cases an all-capitals name into title case. Mixed-case input
// is returned unchanged so hand-entered names keep their original casing.
func TitleWords(value string) string {
	if value == "" || value != strings.ToUpper(value) {
		return value
	}
	hasLetter := false
	for _, r := range value {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return value
	}
	return titleCaser.String(value)
}
