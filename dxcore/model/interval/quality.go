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

package interval

import (
	"encoding/json"

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Quality refines a diatonic interval number into an exact size.
//
// Perfect applies to unisons, fourths, fifths and octaves; Major and Minor
// apply to seconds, thirds, sixths and sevenths. Augmented and Diminished
// widen or narrow a perfect interval by one semitone.
type Quality uint8

const (
	// Perfect is the quality of the unison, fourth, fifth and octave.
	Perfect Quality = iota

	// Major is the larger of the two common sizes of a second, third,
	// sixth or seventh.
	Major

	// Minor is one semitone narrower than Major.
	Minor

	// Augmented is one semitone wider than Perfect.
	Augmented

	// Diminished is one semitone narrower than Perfect.
	Diminished
)

// String constants for Quality values.
//
// These names are the stable external representation of Quality and MAY be
// persisted in JSON/YAML documents.
const (
	PerfectStr    = "perfect"
	MajorStr      = "major"
	MinorStr      = "minor"
	AugmentedStr  = "augmented"
	DiminishedStr = "diminished"
)

// ParseQuality converts a quality name into a Quality.
//
// Accepted inputs are the lowercase names, their Title and UPPER variants,
// and the one-letter symbols used in interval shorthand:
//
//	"perfect",    "P" -> Perfect
//	"major",      "M" -> Major
//	"minor",      "m" -> Minor
//	"augmented",  "A" -> Augmented
//	"diminished", "d" -> Diminished
//
// Any other input returns a *ParseError.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case PerfectStr, "Perfect", "PERFECT", "P":
		return Perfect, nil
	case MajorStr, "Major", "MAJOR", "M":
		return Major, nil
	case MinorStr, "Minor", "MINOR", "m":
		return Minor, nil
	case AugmentedStr, "Augmented", "AUGMENTED", "A":
		return Augmented, nil
	case DiminishedStr, "Diminished", "DIMINISHED", "d":
		return Diminished, nil
	default:
		return Perfect, &errors.ParseError{Type: "IntervalQuality", Value: s}
	}
}

// String returns the lowercase name of the quality, or "unknown".
func (q Quality) String() string {
	switch q {
	case Perfect:
		return PerfectStr
	case Major:
		return MajorStr
	case Minor:
		return MinorStr
	case Augmented:
		return AugmentedStr
	case Diminished:
		return DiminishedStr
	default:
		return "unknown"
	}
}

// Symbol returns the one-letter shorthand used in interval names
// ("P", "M", "m", "A", "d"), or "?" for invalid values.
func (q Quality) Symbol() string {
	switch q {
	case Perfect:
		return "P"
	case Major:
		return "M"
	case Minor:
		return "m"
	case Augmented:
		return "A"
	case Diminished:
		return "d"
	default:
		return "?"
	}
}

// Valid reports whether q is one of the defined constants.
func (q Quality) Valid() bool {
	return q <= Diminished
}

// TypeName returns "IntervalQuality".
func (q Quality) TypeName() string {
	return "IntervalQuality"
}

// Redacted returns the same string as String.
func (q Quality) Redacted() string {
	return q.String()
}

// IsZero reports whether q is Perfect, the zero value.
func (q Quality) IsZero() bool {
	return q == Perfect
}

// Equal reports whether q and other are the same constant.
func (q Quality) Equal(other Quality) bool {
	return q == other
}

// Validate returns a *ValidationError if q is not a defined constant.
func (q Quality) Validate() error {
	if !q.Valid() {
		return &errors.ValidationError{
			Type:   "IntervalQuality",
			Reason: "invalid IntervalQuality value",
			Value:  int(q),
		}
	}
	return nil
}

// MarshalJSON encodes q as its lowercase name.
func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "IntervalQuality", Value: int(q)}
	}
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON accepts a name understood by ParseQuality or a number in
// declaration order (0 for Perfect through 4 for Diminished).
func (q *Quality) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "IntervalQuality", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "IntervalQuality", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseQuality(s)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "IntervalQuality", Data: data, Reason: err.Error()}
	}
	if i < 0 || i > int(Diminished) {
		return &errors.UnmarshalError{Type: "IntervalQuality", Data: data, Reason: "invalid numeric value"}
	}
	*q = Quality(i)
	return nil
}

// MarshalYAML encodes q as its lowercase name.
func (q Quality) MarshalYAML() (any, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "IntervalQuality", Value: int(q)}
	}
	return q.String(), nil
}

// UnmarshalYAML accepts a name understood by ParseQuality.
func (q *Quality) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "IntervalQuality", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseQuality(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Compile-time check that Quality implements model.Model interface.
var _ model.Model = (*Quality)(nil)
