// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package textindex

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters (NFKD) and strips the
// combining marks, so "Café" folds to "Cafe". Non-ASCII runes that
// survive folding are treated as separators downstream.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Tokenize converts a product text blob into index terms:
// fold to ASCII, split on non-letters, lowercase, drop stopwords and
// tokens of length <= 3, de-duplicate preserving first occurrence.
func Tokenize(s string) []string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}

	var (
		tokens []string
		seen   = make(map[string]struct{})
		b      strings.Builder
	)

	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if len(tok) <= 3 {
			return
		}
		if _, stop := stopwords[tok]; stop {
			return
		}
		if _, dup := seen[tok]; dup {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			flush()
		}
	}
	flush()

	return tokens
}
