// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold normalizes Unicode text for case-insensitive matching.
//
// # Usage
//
// Film search must treat "Léon", "LEON" and "leon" as the same query.
// This package collapses case and diacritics so the storage layer can do
// plain substring comparison against columns folded the same way.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Casefold converts an arbitrary Unicode string into its folded search form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Trims surrounding whitespace.
func Casefold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Fall back to plain lowercasing for inputs the transformer rejects.
		folded = s
	}

	return strings.TrimSpace(strings.ToLower(folded))
}
