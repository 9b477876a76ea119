// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Run records one stored matching pass over a fixed set of inputs.
type Run struct {
	ID          string    `json:"id" yaml:"id"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Questions   int       `json:"questions" yaml:"questions"`
	Recipes     int       `json:"recipes" yaml:"recipes"`
	Matched     int       `json:"matched" yaml:"matched"`
	Unmatched   int       `json:"unmatched" yaml:"unmatched"`
	Failed      int       `json:"failed" yaml:"failed"`
}
