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

// Package interval models theoretical intervals: a diatonic number from
// unison (1) to octave (8) refined by a Quality.
//
// An Interval knows two things about itself. Its Number fixes how many
// letter names the interval spans, counting both ends (C to E is a third),
// and its Semitones fixes the sounding distance. The pitch package combines
// both to spell the note an interval above or below a root.
//
// Only combinations that exist in conventional theory are valid: Perfect,
// Augmented and Diminished for 1, 4, 5 and 8; Major and Minor for 2, 3, 6
// and 7. Building or measuring any other combination is a programming error
// and panics. Text from users goes through Parse, which returns an error
// instead.
package interval

import (
	"encoding/json"
	"fmt"
	"strconv"

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"gopkg.in/yaml.v3"
)

const (
	// MinNumber is the smallest diatonic number (the unison).
	MinNumber = 1

	// MaxNumber is the largest diatonic number (the octave).
	MaxNumber = 8
)

// perfectSemitones and majorSemitones are the two base tables. Minor,
// Augmented and Diminished sizes are derived from them in Semitones.
var (
	perfectSemitones = map[int]int{1: 0, 4: 5, 5: 7, 8: 12}
	majorSemitones   = map[int]int{2: 2, 3: 4, 6: 9, 7: 11}
)

// Interval is a theoretical interval such as a major third or a perfect
// fifth.
//
// The zero value is the perfect unison's quality with Number 0 and is not
// valid; construct intervals with New, MustParse or Parse.
type Interval struct {
	// Quality refines the interval's size.
	Quality Quality

	// Number is the diatonic number, 1 (unison) through 8 (octave).
	Number int
}

// Common intervals used by chord and scale construction.
var (
	PerfectUnison = New(Perfect, 1)
	MajorSecond   = New(Major, 2)
	MinorThird    = New(Minor, 3)
	MajorThird    = New(Major, 3)
	PerfectFourth = New(Perfect, 4)
	PerfectFifth  = New(Perfect, 5)
	MinorSixth    = New(Minor, 6)
	MajorSixth    = New(Major, 6)
	MinorSeventh  = New(Minor, 7)
	MajorSeventh  = New(Major, 7)
	PerfectOctave = New(Perfect, 8)
)

// New returns the interval with the given quality and number.
//
// New panics if the combination does not exist (for example a perfect
// third or a major fifth). Such a call is a bug in the caller, not bad
// input.
func New(q Quality, number int) Interval {
	iv := Interval{Quality: q, Number: number}
	if _, ok := iv.semitones(); !ok {
		panic(fmt.Sprintf("interval: no %s interval with number %d", q, number))
	}
	return iv
}

// Parse converts shorthand such as "M3", "m7", "P5", "A4" or "d5" into an
// Interval. The first character is the quality symbol (see
// Quality.Symbol) and the remainder is the diatonic number, written as
// plain decimal digits without sign or leading zero.
//
// Parse returns a *ParseError for malformed text and for combinations that
// do not exist, such as "P3" or "M5".
func Parse(s string) (Interval, error) {
	if len(s) < 2 {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s, Reason: "too short"}
	}
	q, err := ParseQuality(s[:1])
	if err != nil {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s, Reason: "unknown quality " + strconv.Quote(s[:1])}
	}
	digits := s[1:]
	if digits[0] == '0' {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s, Reason: "number has a leading zero"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Interval{}, &errors.ParseError{Type: "Interval", Value: s, Reason: "number is not a decimal integer"}
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s, Reason: "number out of range"}
	}
	iv := Interval{Quality: q, Number: n}
	if !iv.Valid() {
		return Interval{}, &errors.ParseError{Type: "Interval", Value: s, Reason: "no such interval"}
	}
	return iv, nil
}

// MustParse is like Parse but panics on error. It is meant for tables and
// tests.
func MustParse(s string) Interval {
	iv, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return iv
}

// semitones reports the interval's size and whether the combination exists.
func (iv Interval) semitones() (int, bool) {
	switch iv.Quality {
	case Perfect:
		s, ok := perfectSemitones[iv.Number]
		return s, ok
	case Major:
		s, ok := majorSemitones[iv.Number]
		return s, ok
	case Minor:
		s, ok := Interval{Quality: Major, Number: iv.Number}.semitones()
		return s - 1, ok
	case Augmented:
		s, ok := Interval{Quality: Perfect, Number: iv.Number}.semitones()
		return s + 1, ok
	case Diminished:
		s, ok := Interval{Quality: Perfect, Number: iv.Number}.semitones()
		return s - 1, ok
	default:
		return 0, false
	}
}

// Semitones returns the number of semitones the interval spans. A
// diminished unison yields -1.
//
// Semitones panics if the quality/number combination does not exist.
func (iv Interval) Semitones() int {
	s, ok := iv.semitones()
	if !ok {
		panic(fmt.Sprintf("interval: no %s interval with number %d", iv.Quality, iv.Number))
	}
	return s
}

// Steps returns the number of letter names between the two ends of the
// interval, which is Number-1. A third spans two steps (C, D, E).
func (iv Interval) Steps() int {
	return iv.Number - 1
}

// Valid reports whether the quality/number combination exists.
func (iv Interval) Valid() bool {
	_, ok := iv.semitones()
	return ok
}

// String returns the shorthand form, for example "M3" or "P5".
func (iv Interval) String() string {
	return iv.Quality.Symbol() + strconv.Itoa(iv.Number)
}

// Name returns the long form, for example "major 3" or "perfect 5".
func (iv Interval) Name() string {
	return iv.Quality.String() + " " + strconv.Itoa(iv.Number)
}

// Redacted returns the same string as String.
func (iv Interval) Redacted() string {
	return iv.String()
}

// TypeName returns "Interval".
func (iv Interval) TypeName() string {
	return "Interval"
}

// IsZero reports whether iv is the zero Interval.
func (iv Interval) IsZero() bool {
	return iv == Interval{}
}

// Equal reports whether iv and other have the same quality and number.
// Enharmonically equal intervals such as A4 and d5 are not Equal.
func (iv Interval) Equal(other Interval) bool {
	return iv == other
}

// Validate returns a *ValidationError if the combination does not exist.
func (iv Interval) Validate() error {
	if !iv.Quality.Valid() {
		return &errors.ValidationError{
			Type:   "Interval",
			Field:  "Quality",
			Reason: "invalid IntervalQuality value",
			Value:  int(iv.Quality),
		}
	}
	if iv.Number < MinNumber || iv.Number > MaxNumber {
		return &errors.ValidationError{
			Type:   "Interval",
			Field:  "Number",
			Reason: fmt.Sprintf("must be between %d and %d", MinNumber, MaxNumber),
			Value:  iv.Number,
		}
	}
	if !iv.Valid() {
		return &errors.ValidationError{
			Type:   "Interval",
			Reason: fmt.Sprintf("no %s interval with number %d", iv.Quality, iv.Number),
			Value:  iv.String(),
		}
	}
	return nil
}

// MarshalJSON encodes iv as its shorthand string.
func (iv Interval) MarshalJSON() ([]byte, error) {
	if err := iv.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", iv.TypeName(), err)
	}
	return json.Marshal(iv.String())
}

// UnmarshalJSON decodes a shorthand string such as "m7".
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Interval", Data: data, Reason: err.Error()}
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}

// MarshalYAML encodes iv as its shorthand string.
func (iv Interval) MarshalYAML() (any, error) {
	if err := iv.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", iv.TypeName(), err)
	}
	return iv.String(), nil
}

// UnmarshalYAML decodes a shorthand scalar such as "P5".
func (iv *Interval) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Interval", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}

// Compile-time checks that Interval implements model.Model and model.Comparable.
var (
	_ model.Model                = (*Interval)(nil)
	_ model.Comparable[Interval] = Interval{}
)
