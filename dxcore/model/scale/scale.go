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

// Package scale builds major and natural minor scales on a spelled root.
//
// Every degree is spelled on its own letter, so a scale names each of the
// seven letters exactly once:
//
//	A major: A B C# D E F# G#
//	F major: F G A Bb C D E
package scale

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"dirpx.dev/dxharmony/dxcore/model/interval"
	"dirpx.dev/dxharmony/dxcore/model/pitch"
	"gopkg.in/yaml.v3"
)

// Scale is a root pitch class plus a Kind.
type Scale struct {
	Root pitch.Class
	Kind Kind
}

// New returns the scale of kind k on root.
func New(root pitch.Class, k Kind) Scale {
	return Scale{Root: root, Kind: k}
}

// Parse reads a scale name of the form "<pitch> <kind>", for example
// "A minor" or "F# major". A trailing word "scale" is allowed, so
// "Bb major scale" parses as well. Words are separated by exactly one
// space and the kind must be "major" or "minor" in lower case. The pitch
// must be a complete spelling: "Cm major" is rejected.
//
// ParseKind is more lenient; it serves the enum encodings only.
func Parse(s string) (Scale, error) {
	fields := strings.Split(s, " ")
	if len(fields) == 3 && fields[2] == "scale" {
		fields = fields[:2]
	}
	if len(fields) != 2 {
		return Scale{}, &errors.ParseError{Type: "Scale", Value: s, Reason: "want <pitch> <major|minor>"}
	}

	root, rest, err := pitch.Scan(fields[0])
	if err != nil {
		return Scale{}, &errors.ParseError{Type: "Scale", Value: s, Reason: "bad root"}
	}
	if rest != "" {
		return Scale{}, &errors.ParseError{Type: "Scale", Value: s, Reason: fmt.Sprintf("trailing text %q after root", rest)}
	}

	var k Kind
	switch fields[1] {
	case MajorStr:
		k = Major
	case MinorStr:
		k = Minor
	default:
		return Scale{}, &errors.ParseError{Type: "Scale", Value: s, Reason: fmt.Sprintf("unknown kind %q", fields[1])}
	}
	return New(root, k), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Scale {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sc
}

// Intervals returns the seven intervals of the scale above its root.
func (s Scale) Intervals() []interval.Interval {
	return s.Kind.Intervals()
}

// Notes returns the seven degrees of the scale, root first.
//
// A root whose degrees need double accidentals, such as B# major or Fb
// minor, yields the *pitch.SpellingError of the first such degree.
func (s Scale) Notes() ([]pitch.Class, error) {
	ivs := s.Intervals()
	notes := make([]pitch.Class, 0, len(ivs))
	for _, iv := range ivs {
		n, err := s.Root.Above(iv)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Degree returns the n-th degree of the scale, counting the root as 1.
func (s Scale) Degree(n int) (pitch.Class, error) {
	if n < 1 || n > Degrees {
		return pitch.Class{}, &errors.ValidationError{
			Type:   "Scale",
			Field:  "Degree",
			Reason: "must be between 1 and 7",
			Value:  n,
		}
	}
	return s.Root.Above(s.Intervals()[n-1])
}

// String returns the display name, "C major" or "A minor", with the root
// in its display form.
func (s Scale) String() string {
	return s.Root.String() + " " + s.Kind.String()
}

// Name returns the scale name with the root spelled as written. Parse
// reverses it.
func (s Scale) Name() string {
	return s.Root.Name() + " " + s.Kind.String()
}

// Redacted returns the same string as String.
func (s Scale) Redacted() string {
	return s.String()
}

// TypeName returns "Scale".
func (s Scale) TypeName() string {
	return "Scale"
}

// IsZero reports whether s is the zero Scale, C major.
func (s Scale) IsZero() bool {
	return s == Scale{}
}

// Equal reports whether s and other are of the same kind on roots that
// sound the same.
func (s Scale) Equal(other Scale) bool {
	return s.Kind == other.Kind && s.Root.Equal(other.Root)
}

// Validate checks the root and the kind.
func (s Scale) Validate() error {
	if err := s.Root.Validate(); err != nil {
		return err
	}
	return s.Kind.Validate()
}

// LogValue implements slog.LogValuer.
func (s Scale) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("root", s.Root.Name()),
		slog.String("kind", s.Kind.String()),
	)
}

// MarshalJSON encodes s as its Name, for example "Eb minor".
func (s Scale) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(s.Name())
}

// UnmarshalJSON decodes a scale name accepted by Parse.
func (s *Scale) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Scale", Data: data, Reason: err.Error()}
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes s as its Name.
func (s Scale) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return s.Name(), nil
}

// UnmarshalYAML decodes a scale name accepted by Parse.
func (s *Scale) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Scale", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Compile-time checks that Scale implements model.Model and model.Comparable.
var (
	_ model.Model             = (*Scale)(nil)
	_ model.Comparable[Scale] = Scale{}
)
