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

// Package pitch models spelled pitch classes and the interval arithmetic
// that keeps their spelling correct.
//
// A Class is a Letter plus an Accidental, so the package can name 21 pitch
// classes (7 letters times natural, sharp and flat) that sound as only 12
// semitone positions. C# and Db are different Class values that sound the
// same; Equal and Compare look at the sounding pitch, while == and Same
// look at the spelling.
//
// Class.Above returns the note an interval above a root with the spelling a
// musician would write: the major third above D is F#, never Gb. The letter
// is derived from the interval number and the pitch from the interval size,
// and the two are then reconciled.
//
// # Text form
//
// Parsing is case-sensitive: the letter MUST be uppercase A-G, optionally
// followed by '#' or 'b'. The display form (String) follows piano-key
// adjacency, so B# displays as "C", E# as "F", Cb as "B" and Fb as "E".
// Name returns the literal spelling instead and is used for serialization.
package pitch

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log/slog"

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"gopkg.in/yaml.v3"
)

// SemitoneCount is the number of semitone positions in an octave.
const SemitoneCount = 12

// ClassCount is the number of nameable pitch classes.
const ClassCount = LetterCount * AccidentalCount

// Class is a pitch class spelled as a letter plus an accidental.
//
// The zero value is natural C.
type Class struct {
	// Letter is the note name.
	Letter Letter

	// Accidental raises or lowers Letter by one semitone.
	Accidental Accidental
}

// Natural returns the natural pitch class of l.
func Natural(l Letter) Class {
	return Class{Letter: l, Accidental: AccidentalNatural}
}

// Sharp returns l raised by a semitone.
func Sharp(l Letter) Class {
	return Class{Letter: l, Accidental: AccidentalSharp}
}

// Flat returns l lowered by a semitone.
func Flat(l Letter) Class {
	return Class{Letter: l, Accidental: AccidentalFlat}
}

// All returns the 21 nameable pitch classes, ordered by letter from C to B
// and, within a letter, natural, sharp, flat.
func All() []Class {
	out := make([]Class, 0, ClassCount)
	for _, l := range Letters() {
		for _, a := range Accidentals() {
			out = append(out, Class{Letter: l, Accidental: a})
		}
	}
	return out
}

// ParseClass parses a pitch class from the start of s.
//
// The first byte MUST be an uppercase letter A-G; an optional '#' or 'b'
// sets the accidental. Anything after that is ignored, so "C#m7" parses as
// C#. Use Scan to learn what was left over.
func ParseClass(s string) (Class, error) {
	c, _, err := Scan(s)
	return c, err
}

// Scan parses a pitch class from the start of s and returns the unconsumed
// remainder. It is the building block of the chord and scale parsers.
func Scan(s string) (Class, string, error) {
	if s == "" {
		return Class{}, s, &errors.ParseError{Type: "PitchClass", Value: s, Reason: "empty"}
	}
	l, ok := letterFromByte(s[0])
	if !ok {
		return Class{}, s, &errors.ParseError{
			Type:   "PitchClass",
			Value:  s,
			Reason: fmt.Sprintf("unknown letter %q", s[0]),
		}
	}
	c := Natural(l)
	rest := s[1:]
	if rest != "" {
		switch rest[0] {
		case '#':
			c.Accidental = AccidentalSharp
			rest = rest[1:]
		case 'b':
			c.Accidental = AccidentalFlat
			rest = rest[1:]
		}
	}
	return c, rest, nil
}

// MustParseClass is like ParseClass but panics on error and on trailing
// text. It is meant for tables and tests.
func MustParseClass(s string) Class {
	c, rest, err := Scan(s)
	if err != nil {
		panic(err)
	}
	if rest != "" {
		panic(fmt.Sprintf("pitch: trailing text %q in %q", rest, s))
	}
	return c
}

// Semitone returns the sounding position of c, 0 through 11. Flat C
// resolves to 11 and sharp B to 0.
func (c Class) Semitone() int {
	s := (c.Letter.Semitone() + c.Accidental.Offset()) % SemitoneCount
	if s < 0 {
		s += SemitoneCount
	}
	return s
}

// Natural returns the natural pitch class of c's letter.
func (c Class) Natural() Class {
	return Natural(c.Letter)
}

// Name returns the literal spelling of c: the letter followed by "#" or
// "b", for example "Cb" or "E#".
func (c Class) Name() string {
	return c.Letter.String() + c.Accidental.Sign()
}

// String returns the display form of c.
//
// Naturals display as the bare letter and other classes as letter plus
// sign, except where no black key separates two letters: B# displays as
// "C", E# as "F", Cb as "B" and Fb as "E".
func (c Class) String() string {
	switch c.Accidental {
	case AccidentalSharp:
		switch c.Letter {
		case B:
			return "C"
		case E:
			return "F"
		}
	case AccidentalFlat:
		switch c.Letter {
		case C:
			return "B"
		case F:
			return "E"
		}
	}
	return c.Name()
}

// Redacted returns the same string as String.
func (c Class) Redacted() string {
	return c.String()
}

// TypeName returns "PitchClass".
func (c Class) TypeName() string {
	return "PitchClass"
}

// IsZero reports whether c is natural C, the zero value.
func (c Class) IsZero() bool {
	return c == Class{}
}

// Equal reports whether c and other sound the same, regardless of
// spelling. C# and Db are Equal.
func (c Class) Equal(other Class) bool {
	return c.Semitone() == other.Semitone()
}

// Same reports whether c and other are spelled identically.
func (c Class) Same(other Class) bool {
	return c == other
}

// Compare orders pitch classes by semitone position and returns -1, 0 or
// +1. Enharmonic spellings compare as 0.
func (c Class) Compare(other Class) int {
	return cmp.Compare(c.Semitone(), other.Semitone())
}

// Validate returns a *ValidationError if the letter or accidental is out
// of range.
func (c Class) Validate() error {
	if !c.Letter.Valid() {
		return &errors.ValidationError{
			Type:   "PitchClass",
			Field:  "Letter",
			Reason: "must be one of C, D, E, F, G, A, B",
			Value:  int(c.Letter),
		}
	}
	if !c.Accidental.Valid() {
		return &errors.ValidationError{
			Type:   "PitchClass",
			Field:  "Accidental",
			Reason: "must be natural, sharp or flat",
			Value:  int(c.Accidental),
		}
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (c Class) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Name()),
		slog.Int("semitone", c.Semitone()),
	)
}

// parseExact parses s and rejects trailing text. Serialized pitch classes
// are always complete.
func parseExact(s string) (Class, error) {
	c, rest, err := Scan(s)
	if err != nil {
		return Class{}, err
	}
	if rest != "" {
		return Class{}, &errors.ParseError{Type: "PitchClass", Value: s, Reason: fmt.Sprintf("trailing text %q", rest)}
	}
	return c, nil
}

// MarshalJSON encodes c as its literal spelling, for example "Cb".
func (c Class) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(c.Name())
}

// UnmarshalJSON decodes a spelling such as "F#". Trailing text is an error.
func (c *Class) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "PitchClass", Data: data, Reason: err.Error()}
	}
	parsed, err := parseExact(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes c as its literal spelling.
func (c Class) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return c.Name(), nil
}

// UnmarshalYAML decodes a spelling such as "Bb".
func (c *Class) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "PitchClass", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := parseExact(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Compile-time checks that Class implements model.Model and model.Comparable.
var (
	_ model.Model             = (*Class)(nil)
	_ model.Comparable[Class] = Class{}
)
