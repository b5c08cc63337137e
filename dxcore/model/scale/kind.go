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

package scale

import (
	"encoding/json"

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"dirpx.dev/dxharmony/dxcore/model/interval"
	"gopkg.in/yaml.v3"
)

// Kind is the interval pattern of a heptatonic scale.
type Kind uint8

const (
	// Major is the major (Ionian) scale: M2 M3 P4 P5 M6 M7.
	Major Kind = iota

	// Minor is the natural minor (Aeolian) scale: M2 m3 P4 P5 m6 m7.
	Minor
)

// String constants for Kind values.
const (
	MajorStr = "major"
	MinorStr = "minor"
)

// Degrees is the number of notes in every scale of this package.
const Degrees = 7

var kindIntervals = [...][Degrees]interval.Interval{
	Major: {
		interval.PerfectUnison, interval.MajorSecond, interval.MajorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MajorSixth, interval.MajorSeventh,
	},
	Minor: {
		interval.PerfectUnison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MinorSixth, interval.MinorSeventh,
	},
}

// ParseKind converts "major" or "minor" into a Kind. Title case, upper
// case and the long names "natural-minor" and "natural_minor" are also
// accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case MajorStr, "Major", "MAJOR":
		return Major, nil
	case MinorStr, "Minor", "MINOR", "natural-minor", "natural_minor", "NaturalMinor":
		return Minor, nil
	default:
		return Major, &errors.ParseError{Type: "ScaleKind", Value: s}
	}
}

// Intervals returns the seven intervals of the scale measured from its
// root, starting with the perfect unison. It panics if k is not valid.
func (k Kind) Intervals() []interval.Interval {
	ivs := kindIntervals[k]
	return ivs[:]
}

// String returns "major", "minor" or "unknown".
func (k Kind) String() string {
	switch k {
	case Major:
		return MajorStr
	case Minor:
		return MinorStr
	default:
		return "unknown"
	}
}

// Valid reports whether k is Major or Minor.
func (k Kind) Valid() bool {
	return k == Major || k == Minor
}

// TypeName returns "ScaleKind".
func (k Kind) TypeName() string {
	return "ScaleKind"
}

// Redacted returns the same string as String.
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether k is Major, the zero value.
func (k Kind) IsZero() bool {
	return k == Major
}

// Equal reports whether k and other are the same kind.
func (k Kind) Equal(other Kind) bool {
	return k == other
}

// Validate returns a *ValidationError if k is not a defined constant.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{
			Type:   "ScaleKind",
			Reason: "must be major or minor",
			Value:  int(k),
		}
	}
	return nil
}

// MarshalJSON encodes k as "major" or "minor".
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "ScaleKind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts a name understood by ParseKind, or 0 or 1.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "ScaleKind", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "ScaleKind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(s)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "ScaleKind", Data: data, Reason: err.Error()}
	}
	if i != int(Major) && i != int(Minor) {
		return &errors.UnmarshalError{Type: "ScaleKind", Data: data, Reason: "invalid numeric value"}
	}
	*k = Kind(i)
	return nil
}

// MarshalYAML encodes k as "major" or "minor".
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "ScaleKind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML accepts a name understood by ParseKind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ScaleKind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Compile-time check that Kind implements model.Model interface.
var _ model.Model = (*Kind)(nil)
