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

// Letter is one of the seven natural note names, the white keys of a piano.
//
// Letters have two independent positions. Their index in the letter cycle
// (C=0 through B=6) is evenly spaced and drives diatonic counting. Their
// semitone position (C=0, D=2, E=4, F=5, G=7, A=9, B=11) is not: E-F and
// B-C are a half step apart while every other neighbour pair is a whole
// step. All enharmonic behaviour follows from this asymmetry.
type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// LetterCount is the length of the letter cycle.
const LetterCount = 7

var letterSemitones = [LetterCount]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [LetterCount]string{"C", "D", "E", "F", "G", "A", "B"}

// Letters returns the seven letters in cycle order, starting at C.
func Letters() []Letter {
	return []Letter{C, D, E, F, G, A, B}
}

// ParseLetter converts an uppercase letter name "A" through "G" into a
// Letter. Lowercase names are rejected: "b" is reserved for the flat sign
// and accepting "b" as a letter would make "bb" ambiguous.
func ParseLetter(s string) (Letter, error) {
	if len(s) == 1 {
		if l, ok := letterFromByte(s[0]); ok {
			return l, nil
		}
	}
	return C, &errors.ParseError{Type: "Letter", Value: s}
}

func letterFromByte(b byte) (Letter, bool) {
	switch b {
	case 'C':
		return C, true
	case 'D':
		return D, true
	case 'E':
		return E, true
	case 'F':
		return F, true
	case 'G':
		return G, true
	case 'A':
		return A, true
	case 'B':
		return B, true
	default:
		return C, false
	}
}

// Index returns the letter's position in the cycle, 0 for C through 6 for B.
func (l Letter) Index() int {
	return int(l)
}

// Semitone returns the semitone position of the natural note, 0 through 11.
//
// Semitone panics if l is not a valid Letter.
func (l Letter) Semitone() int {
	return letterSemitones[l]
}

// Successor returns the letter n steps above l in the cycle, wrapping from
// B back to C. Negative n walks downwards, so Successor(-1) of C is B.
func (l Letter) Successor(n int) Letter {
	i := (int(l) + n) % LetterCount
	if i < 0 {
		i += LetterCount
	}
	return Letter(i)
}

// Distance returns the number of letter steps from l up to other, 0
// through 6. The diatonic interval number between the two is Distance+1.
func (l Letter) Distance(other Letter) int {
	d := (int(other) - int(l)) % LetterCount
	if d < 0 {
		d += LetterCount
	}
	return d
}

// Valid reports whether l is one of C through B.
func (l Letter) Valid() bool {
	return l <= B
}

// String returns the uppercase letter name, or "?" for invalid values.
func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}
	return letterNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Letter) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Letter", Value: int(l)}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLetter.
func (l *Letter) UnmarshalText(text []byte) error {
	parsed, err := ParseLetter(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
