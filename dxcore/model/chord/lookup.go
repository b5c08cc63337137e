/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package chord

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"dirpx.dev/dxharmony/dxcore/model"
	"dirpx.dev/dxharmony/dxcore/model/pitch"
	"gopkg.in/yaml.v3"
)

// Lookup finds the chords that contain a set of pitch classes.
//
// The zero Lookup uses PolicySpelled. A Lookup is usually built in code but
// can also be loaded from configuration:
//
//	policy: sounding
type Lookup struct {
	// Policy decides how enharmonic roots are reported.
	Policy LookupPolicy `json:"policy" yaml:"policy"`
}

// FindMatching is Lookup{}.Find.
func FindMatching(notes []pitch.Class) ([]Chord, error) {
	return Lookup{}.Find(notes)
}

// Find returns every chord, over all 21 roots and every quality, whose
// tones include each of notes. Membership is by sounding pitch, so {Db}
// is found in A major (A C# E).
//
// Chords whose tones cannot be spelled, such as B# major, are skipped. An
// empty notes slice matches every remaining chord. The result is sorted by
// root letter, then accidental, then quality, and holds no duplicates.
//
// Find returns an error only if a note or the policy is invalid.
func (l Lookup) Find(notes []pitch.Class) ([]Chord, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := model.ValidateAll(notes); err != nil {
		return nil, fmt.Errorf("invalid notes: %w", err)
	}

	var found []Chord
	for _, root := range pitch.All() {
		for _, q := range Qualities() {
			c := New(root, q)
			if c.Contains(notes) {
				found = append(found, c)
			}
		}
	}

	if l.Policy == PolicySounding {
		found = collapseEnharmonic(found)
	}

	slices.SortFunc(found, compareSpelling)
	return found, nil
}

type soundingKey struct {
	semitone int
	quality  Quality
}

// collapseEnharmonic keeps one chord per sounding root and quality,
// preferring the root with the lowest Accidental: natural, sharp, flat.
func collapseEnharmonic(chords []Chord) []Chord {
	best := make(map[soundingKey]Chord, len(chords))
	for _, c := range chords {
		k := soundingKey{semitone: c.Root.Semitone(), quality: c.Quality}
		if prev, ok := best[k]; !ok || c.Root.Accidental < prev.Root.Accidental {
			best[k] = c
		}
	}

	out := make([]Chord, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	return out
}

func compareSpelling(a, b Chord) int {
	return cmp.Or(
		cmp.Compare(a.Root.Letter, b.Root.Letter),
		cmp.Compare(a.Root.Accidental, b.Root.Accidental),
		cmp.Compare(a.Quality, b.Quality),
	)
}

// String returns "Lookup(policy=...)".
func (l Lookup) String() string {
	return "Lookup(policy=" + l.Policy.String() + ")"
}

// Redacted returns the same string as String.
func (l Lookup) Redacted() string {
	return l.String()
}

// TypeName returns "Lookup".
func (l Lookup) TypeName() string {
	return "Lookup"
}

// IsZero reports whether l is the default Lookup.
func (l Lookup) IsZero() bool {
	return l.Policy.IsZero()
}

// Equal reports whether l and other use the same policy.
func (l Lookup) Equal(other Lookup) bool {
	return l.Policy == other.Policy
}

// Validate checks the policy.
func (l Lookup) Validate() error {
	if err := l.Policy.Validate(); err != nil {
		return fmt.Errorf("invalid Lookup: %w", err)
	}
	return nil
}

// MarshalJSON encodes l as an object with a "policy" field.
func (l Lookup) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Lookup: %w", err)
	}

	// Use type alias to avoid infinite recursion
	type lookupJSON Lookup
	return json.Marshal(lookupJSON(l))
}

// UnmarshalJSON decodes and validates a Lookup. A missing policy means
// PolicySpelled.
func (l *Lookup) UnmarshalJSON(data []byte) error {
	type lookupJSON Lookup
	var temp lookupJSON

	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("failed to unmarshal Lookup: %w", err)
	}

	*l = Lookup(temp)
	return l.Validate()
}

// MarshalYAML encodes l as a mapping with a "policy" key.
func (l Lookup) MarshalYAML() (any, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Lookup: %w", err)
	}

	type lookupYAML Lookup
	return lookupYAML(l), nil
}

// UnmarshalYAML decodes and validates a Lookup.
func (l *Lookup) UnmarshalYAML(node *yaml.Node) error {
	type lookupYAML Lookup
	var temp lookupYAML

	if err := node.Decode(&temp); err != nil {
		return fmt.Errorf("failed to unmarshal Lookup: %w", err)
	}

	*l = Lookup(temp)
	return l.Validate()
}

// Compile-time checks that Lookup implements model.Model and model.Comparable.
var (
	_ model.Model              = (*Lookup)(nil)
	_ model.Comparable[Lookup] = Lookup{}
)
