// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug canonicalizes vernacular plant names into a hyphenated form.
//
// # Usage
//
// Vernacular names arrive from free-text form input ("Erva Doce", "capim
// santo") and are stored in a single canonical shape ("erva-doce",
// "capim-santo") so that substring search matches regardless of how the
// submitter spaced or cased the name. Accented characters are preserved —
// these are Portuguese names and accents are significant.
package slug

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Vernacular converts a free-text vernacular name to its canonical stored form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC so composed and decomposed accents compare equal.
// 2. Trims surrounding whitespace and lowercases.
// 3. Replaces each run of inner whitespace with a single hyphen.
func Vernacular(s string) string {
	result := norm.NFC.String(s)
	result = strings.ToLower(strings.TrimSpace(result))

	// Fields splits on any run of Unicode whitespace, so joining with a
	// hyphen collapses multi-space input in one pass.
	return strings.Join(strings.Fields(result), "-")
}
