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

// Package chord models chords built on a spelled root, the symbols that
// name them ("C", "Ebm7", "F#maj7") and the reverse lookup from a set of
// pitch classes to the chords that contain it.
package chord

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"dirpx.dev/dxharmony/dxcore/model/interval"
	"dirpx.dev/dxharmony/dxcore/model/pitch"
	"gopkg.in/yaml.v3"
)

// Chord is a root pitch class plus a quality.
//
// The zero Chord is C major.
type Chord struct {
	Root    pitch.Class
	Quality Quality
}

// New returns the chord of quality q on root.
func New(root pitch.Class, q Quality) Chord {
	return Chord{Root: root, Quality: q}
}

// Parse reads a chord symbol: a pitch class followed by an optional
// quality suffix.
//
//	"C"     -> C major
//	"Cm"    -> C minor
//	"Bb7"   -> Bb dominant seventh
//	"Dmaj7" -> D major seventh
//	"F#m7"  -> F# minor seventh
//
// Parsing is permissive after the root. A suffix that is none of "maj7",
// "m7", "7" or "m" gives a major chord, and text following a recognized
// suffix is ignored; "Cmaj" reads as C minor. Parse fails only when the
// root cannot be read.
func Parse(s string) (Chord, error) {
	c, _, err := scan(s)
	return c, err
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Chord {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func scan(s string) (Chord, string, error) {
	root, rest, err := pitch.Scan(s)
	if err != nil {
		return Chord{}, s, &errors.ParseError{Type: "Chord", Value: s, Reason: "bad root"}
	}
	q, rest := ParseSuffix(rest)
	return Chord{Root: root, Quality: q}, rest, nil
}

// Intervals returns the intervals making up the chord, starting with the
// perfect unison of the root.
func (c Chord) Intervals() []interval.Interval {
	return append([]interval.Interval{interval.PerfectUnison}, c.Quality.Intervals()...)
}

// Notes returns the chord tones, root first, each spelled on the letter
// its interval calls for. C major is C E G, D major is D F# A, C minor is
// C Eb G.
//
// Roots such as B# or Fb have tones that need a double accidental; Notes
// returns the *pitch.SpellingError for the first such tone.
func (c Chord) Notes() ([]pitch.Class, error) {
	ivs := c.Quality.Intervals()
	notes := make([]pitch.Class, 0, len(ivs)+1)
	notes = append(notes, c.Root)
	for _, iv := range ivs {
		n, err := c.Root.Above(iv)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Contains reports whether every note sounds as one of the chord tones.
// Spelling is ignored: a chord on C# contains Db. Unspellable chords
// contain nothing.
func (c Chord) Contains(notes []pitch.Class) bool {
	tones, err := c.Notes()
	if err != nil {
		return false
	}
	for _, n := range notes {
		if !model.ContainsEqual(tones, n) {
			return false
		}
	}
	return true
}

// String returns the display symbol: the root in its normalized display
// form followed by the quality suffix. B# minor displays as "Cm".
func (c Chord) String() string {
	return c.Root.String() + c.Quality.Suffix()
}

// Symbol returns the literal chord symbol, with the root spelled as
// written. B# minor is "B#m". Parse(c.Symbol()) gives back c.
func (c Chord) Symbol() string {
	return c.Root.Name() + c.Quality.Suffix()
}

// Redacted returns the same string as String.
func (c Chord) Redacted() string {
	return c.String()
}

// TypeName returns "Chord".
func (c Chord) TypeName() string {
	return "Chord"
}

// IsZero reports whether c is the zero Chord, C major.
func (c Chord) IsZero() bool {
	return c == Chord{}
}

// Equal reports whether c and other have the same quality on roots that
// sound the same. C# major is Equal to Db major.
func (c Chord) Equal(other Chord) bool {
	return c.Quality == other.Quality && c.Root.Equal(other.Root)
}

// Validate checks the root and the quality.
func (c Chord) Validate() error {
	if err := c.Root.Validate(); err != nil {
		return err
	}
	return c.Quality.Validate()
}

// LogValue implements slog.LogValuer.
func (c Chord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("symbol", c.Symbol()),
		slog.String("root", c.Root.Name()),
		slog.String("quality", c.Quality.String()),
	)
}

func parseExact(s string) (Chord, error) {
	c, rest, err := scan(s)
	if err != nil {
		return Chord{}, err
	}
	if rest != "" {
		return Chord{}, &errors.ParseError{Type: "Chord", Value: s, Reason: fmt.Sprintf("trailing text %q", rest)}
	}
	return c, nil
}

// MarshalJSON encodes c as its literal symbol, for example "Ebm7".
func (c Chord) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(c.Symbol())
}

// UnmarshalJSON decodes a chord symbol. Unlike Parse it rejects text that
// is not part of a recognized suffix.
func (c *Chord) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Chord", Data: data, Reason: err.Error()}
	}
	parsed, err := parseExact(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes c as its literal symbol.
func (c Chord) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return c.Symbol(), nil
}

// UnmarshalYAML decodes a chord symbol.
func (c *Chord) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Chord", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := parseExact(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Compile-time checks that Chord implements model.Model and model.Comparable.
var (
	_ model.Model             = (*Chord)(nil)
	_ model.Comparable[Chord] = Chord{}
)
