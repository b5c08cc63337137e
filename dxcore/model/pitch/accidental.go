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

package pitch

import (
	"dirpx.dev/dxharmony/dxcore/errors"
)

// Accidental raises or lowers a letter by one semitone. Double sharps and
// double flats are not modelled.
type Accidental uint8

const (
	// AccidentalNatural leaves the letter unchanged.
	AccidentalNatural Accidental = iota

	// AccidentalSharp raises the letter by a semitone.
	AccidentalSharp

	// AccidentalFlat lowers the letter by a semitone.
	AccidentalFlat
)

// AccidentalCount is the number of defined accidentals.
const AccidentalCount = 3

// Accidental names used for text encoding.
const (
	AccidentalNaturalStr = "natural"
	AccidentalSharpStr   = "sharp"
	AccidentalFlatStr    = "flat"
)

// Accidentals returns the accidentals in declaration order.
func Accidentals() []Accidental {
	return []Accidental{AccidentalNatural, AccidentalSharp, AccidentalFlat}
}

// ParseAccidental converts a name ("natural", "sharp", "flat") or a sign
// ("", "#", "b") into an Accidental.
func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case AccidentalNaturalStr, "", "Natural", "NATURAL":
		return AccidentalNatural, nil
	case AccidentalSharpStr, "#", "Sharp", "SHARP":
		return AccidentalSharp, nil
	case AccidentalFlatStr, "b", "Flat", "FLAT":
		return AccidentalFlat, nil
	default:
		return AccidentalNatural, &errors.ParseError{Type: "Accidental", Value: s}
	}
}

// Offset returns the accidental's effect in semitones: 0, +1 or -1.
func (a Accidental) Offset() int {
	switch a {
	case AccidentalSharp:
		return 1
	case AccidentalFlat:
		return -1
	default:
		return 0
	}
}

// Sign returns the accidental as written after a letter: "", "#" or "b".
func (a Accidental) Sign() string {
	switch a {
	case AccidentalSharp:
		return "#"
	case AccidentalFlat:
		return "b"
	default:
		return ""
	}
}

// String returns "natural", "sharp", "flat" or "unknown".
func (a Accidental) String() string {
	switch a {
	case AccidentalNatural:
		return AccidentalNaturalStr
	case AccidentalSharp:
		return AccidentalSharpStr
	case AccidentalFlat:
		return AccidentalFlatStr
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the defined constants.
func (a Accidental) Valid() bool {
	return a <= AccidentalFlat
}

// MarshalText implements encoding.TextMarshaler.
func (a Accidental) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Accidental", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseAccidental.
func (a *Accidental) UnmarshalText(text []byte) error {
	parsed, err := ParseAccidental(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
