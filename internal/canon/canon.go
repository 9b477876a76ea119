// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package canon maps noisy extracted strings onto closed vocabularies.
// Values and vocabulary entries are compared in normalized form and scored
// with the Ratcliff/Obershelp sequence ratio; the best entry wins and ties
// go to the earlier entry.
package canon

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// DefaultCutoff is the minimum ratio for SnapThreshold when none is configured.
const DefaultCutoff = 0.6

// Mode selects what happens when no vocabulary entry is close to a value.
type Mode int

const (
	// SnapThreshold returns the value unchanged when the best ratio is
	// below the cutoff. Used for loosely typed free text.
	SnapThreshold Mode = iota

	// SnapAlways returns the nearest entry whatever its ratio. Used for
	// authoritative enum fields such as technique groups.
	SnapAlways
)

func (m Mode) String() string {
	switch m {
	case SnapAlways:
		return "always"
	case SnapThreshold:
		return "threshold"
	}
	return "unknown"
}

// Canonicalizer snaps values onto vocabularies. It is stateless apart from
// its cutoff and safe for concurrent use.
type Canonicalizer struct {
	cutoff float64
}

// New returns a Canonicalizer using cfg.Cutoff, or DefaultCutoff when unset.
func New(cfg types.CanonConfig) *Canonicalizer {
	cutoff := cfg.Cutoff
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	return &Canonicalizer{cutoff: cutoff}
}

// Cutoff returns the threshold used by SnapThreshold.
func (c *Canonicalizer) Cutoff() float64 { return c.cutoff }

// Best returns the closest vocabulary entry to value and its ratio.
// ok is false when the vocabulary is empty.
func (c *Canonicalizer) Best(value string, vocab *Vocabulary) (entry string, ratio float64, ok bool) {
	if vocab.Len() == 0 {
		return "", 0, false
	}

	target := Normalize(value)
	m := difflib.NewMatcher(nil, chars(target))
	best := -1
	for i, candidate := range vocab.normalized {
		if candidate == target {
			return vocab.entries[i], 1, true
		}
		m.SetSeq1(chars(candidate))
		if r := m.Ratio(); r > ratio || best < 0 {
			best, ratio = i, r
		}
	}
	return vocab.entries[best], ratio, true
}

// Canonicalize returns the vocabulary entry closest to value under mode.
// Empty values and empty vocabularies pass through unchanged.
func (c *Canonicalizer) Canonicalize(value string, vocab *Vocabulary, mode Mode) string {
	if strings.TrimSpace(value) == "" {
		return value
	}
	entry, ratio, ok := c.Best(value, vocab)
	if !ok {
		return value
	}
	if mode == SnapThreshold && ratio < c.cutoff {
		return value
	}
	return entry
}

// CanonicalizeAll canonicalizes each element, preserving order and nil-ness.
func (c *Canonicalizer) CanonicalizeAll(values []string, vocab *Vocabulary, mode Mode) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = c.Canonicalize(v, vocab, mode)
	}
	return out
}

// CanonicalizeValue applies Canonicalize recursively: strings are snapped,
// maps keep their keys and have their values canonicalized, slices are
// canonicalized element-wise, and any other value is returned as is.
func (c *Canonicalizer) CanonicalizeValue(value any, vocab *Vocabulary, mode Mode) any {
	switch v := value.(type) {
	case string:
		return c.Canonicalize(v, vocab, mode)
	case []string:
		return c.CanonicalizeAll(v, vocab, mode)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = c.CanonicalizeValue(e, vocab, mode)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, e := range v {
			out[k] = c.Canonicalize(e, vocab, mode)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = c.CanonicalizeValue(e, vocab, mode)
		}
		return out
	default:
		return value
	}
}

// chars splits s into one-character strings for the sequence matcher.
func chars(s string) []string {
	return strings.Split(s, "")
}
