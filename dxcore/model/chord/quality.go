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
	"encoding/json"
	"strings"

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"dirpx.dev/dxharmony/dxcore/model/interval"
	"gopkg.in/yaml.v3"
)

// Quality selects which notes are stacked on a chord's root.
type Quality uint8

const (
	// Major is the major triad: root, major third, perfect fifth.
	Major Quality = iota

	// Minor is the minor triad: root, minor third, perfect fifth.
	Minor

	// DominantSeventh adds a minor seventh to the major triad.
	DominantSeventh

	// MajorSeventh adds a major seventh to the major triad.
	MajorSeventh

	// MinorSeventh adds a minor seventh to the minor triad.
	MinorSeventh
)

// String constants for Quality values used in JSON/YAML documents.
const (
	MajorStr           = "major"
	MinorStr           = "minor"
	DominantSeventhStr = "dominant-seventh"
	MajorSeventhStr    = "major-seventh"
	MinorSeventhStr    = "minor-seventh"
)

// Qualities returns every chord quality in declaration order.
func Qualities() []Quality {
	return []Quality{Major, Minor, DominantSeventh, MajorSeventh, MinorSeventh}
}

// qualityIntervals lists the intervals above the root, in ascending order
// of interval number. The root itself is implied.
var qualityIntervals = [...][]interval.Interval{
	Major:           {interval.MajorThird, interval.PerfectFifth},
	Minor:           {interval.MinorThird, interval.PerfectFifth},
	DominantSeventh: {interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh},
	MajorSeventh:    {interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh},
	MinorSeventh:    {interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh},
}

// qualitySuffixes lists the chord-symbol suffixes in matching priority.
// Longer suffixes come first so "m7" is not read as "m" plus a stray "7".
var qualitySuffixes = []struct {
	suffix  string
	quality Quality
}{
	{"maj7", MajorSeventh},
	{"m7", MinorSeventh},
	{"7", DominantSeventh},
	{"m", Minor},
}

// ParseQuality converts a quality name such as "minor" or
// "dominant-seventh" into a Quality.
//
// Chord-symbol suffixes are not accepted here; see ParseSuffix.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case MajorStr, "Major", "MAJOR":
		return Major, nil
	case MinorStr, "Minor", "MINOR":
		return Minor, nil
	case DominantSeventhStr, "DominantSeventh", "dominant_seventh", "DOMINANT_SEVENTH":
		return DominantSeventh, nil
	case MajorSeventhStr, "MajorSeventh", "major_seventh", "MAJOR_SEVENTH":
		return MajorSeventh, nil
	case MinorSeventhStr, "MinorSeventh", "minor_seventh", "MINOR_SEVENTH":
		return MinorSeventh, nil
	default:
		return Major, &errors.ParseError{Type: "ChordQuality", Value: s}
	}
}

// ParseSuffix reads a quality suffix from the start of s and returns the
// unconsumed remainder. Suffixes are tried longest first: "maj7", "m7",
// "7", "m".
//
// A remainder that starts with none of them yields Major with s returned
// whole. This is the permissive chord-symbol default, so "Csus4" parses as
// C major.
func ParseSuffix(s string) (Quality, string) {
	for _, qs := range qualitySuffixes {
		if rest, ok := strings.CutPrefix(s, qs.suffix); ok {
			return qs.quality, rest
		}
	}
	return Major, s
}

// Suffix returns the chord-symbol suffix: "" for Major, "m", "7", "maj7"
// or "m7".
func (q Quality) Suffix() string {
	switch q {
	case Minor:
		return "m"
	case DominantSeventh:
		return "7"
	case MajorSeventh:
		return "maj7"
	case MinorSeventh:
		return "m7"
	default:
		return ""
	}
}

// Intervals returns the intervals stacked above the root, in ascending
// order. The returned slice is a copy.
//
// Intervals panics if q is not valid.
func (q Quality) Intervals() []interval.Interval {
	return append([]interval.Interval(nil), qualityIntervals[q]...)
}

// String returns the kebab-case name of the quality, or "unknown".
func (q Quality) String() string {
	switch q {
	case Major:
		return MajorStr
	case Minor:
		return MinorStr
	case DominantSeventh:
		return DominantSeventhStr
	case MajorSeventh:
		return MajorSeventhStr
	case MinorSeventh:
		return MinorSeventhStr
	default:
		return "unknown"
	}
}

// Valid reports whether q is one of the defined constants.
func (q Quality) Valid() bool {
	return q <= MinorSeventh
}

// TypeName returns "ChordQuality".
func (q Quality) TypeName() string {
	return "ChordQuality"
}

// Redacted returns the same string as String.
func (q Quality) Redacted() string {
	return q.String()
}

// IsZero reports whether q is Major, the zero value. Major is a valid
// quality.
func (q Quality) IsZero() bool {
	return q == Major
}

// Equal reports whether q and other are the same constant.
func (q Quality) Equal(other Quality) bool {
	return q == other
}

// Validate returns a *ValidationError if q is not a defined constant.
func (q Quality) Validate() error {
	if !q.Valid() {
		return &errors.ValidationError{
			Type:   "ChordQuality",
			Reason: "invalid ChordQuality value",
			Value:  int(q),
		}
	}
	return nil
}

// MarshalJSON encodes q as its kebab-case name.
func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "ChordQuality", Value: int(q)}
	}
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON accepts a name understood by ParseQuality or a number in
// declaration order.
func (q *Quality) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "ChordQuality", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "ChordQuality", Data: data, Reason: err.Error()}
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
		return &errors.UnmarshalError{Type: "ChordQuality", Data: data, Reason: err.Error()}
	}
	if i < 0 || i > int(MinorSeventh) {
		return &errors.UnmarshalError{Type: "ChordQuality", Data: data, Reason: "invalid numeric value"}
	}
	*q = Quality(i)
	return nil
}

// MarshalYAML encodes q as its kebab-case name.
func (q Quality) MarshalYAML() (any, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "ChordQuality", Value: int(q)}
	}
	return q.String(), nil
}

// UnmarshalYAML accepts a name understood by ParseQuality.
func (q *Quality) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ChordQuality", Data: []byte(node.Value), Reason: err.Error()}
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
