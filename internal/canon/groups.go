// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package canon

import "strings"

// groupKeywords maps a normalized keyword found inside a technique name to
// its parent group. Checked in order; the first hit wins.
var groupKeywords = []struct {
	keyword string
	group   string
}{
	{"marinatura", "marinatura"},
	{"affumicatura", "affumicatura"},
	{"fermentazione", "fermentazione"},
	{"decostruzione", "decostruzione"},
	{"sferificazione", "sferificazione"},
	{"taglio", "tecniche di taglio"},
	{"affettamento", "tecniche di taglio"},
	{"impasto", "tecniche di impasto"},
	{"surgelamento", "surgelamento"},
	{"congela", "surgelamento"},
	{"bollitura", "bollitura"},
	{"ebollizione", "bollitura"},
	{"grigliatura", "grigliatura"},
	{"forno", "cottura al forno"},
	{"vapore", "cottura al vapore"},
	{"sottovuoto", "cottura sottovuoto"},
	{"salto", "cottura al salto"},
	{"padella", "cottura al salto"},
}

// Classifier derives the parent technique group of technique names.
type Classifier struct {
	canon  *Canonicalizer
	groups *Vocabulary
}

// NewClassifier returns a Classifier that labels techniques with entries
// of groups.
func NewClassifier(c *Canonicalizer, groups *Vocabulary) *Classifier {
	return &Classifier{canon: c, groups: groups}
}

// GroupsOf returns one group label per technique, in input order, with
// duplicates kept. A technique containing a known keyword takes that
// keyword's group; any other technique is snapped to the nearest group.
// The result is never nil.
func (cl *Classifier) GroupsOf(techniques []string) []string {
	out := make([]string, 0, len(techniques))
	for _, t := range techniques {
		out = append(out, cl.groupOf(t))
	}
	return out
}

func (cl *Classifier) groupOf(technique string) string {
	n := Normalize(technique)
	for _, k := range groupKeywords {
		if strings.Contains(n, k.keyword) {
			return cl.canon.Canonicalize(k.group, cl.groups, SnapAlways)
		}
	}
	return cl.canon.Canonicalize(technique, cl.groups, SnapAlways)
}
