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

	"dirpx.dev/dxharmony/dxcore/errors"
	"dirpx.dev/dxharmony/dxcore/model"
	"gopkg.in/yaml.v3"
)

// LookupPolicy controls how reverse lookup treats chords whose roots are
// spelled differently but sound the same.
//
// Every one of the 21 pitch classes is tried as a root, so a set such as
// {C#, F, G#} is matched by both C# major and Db major. The policy decides
// whether both spellings are reported.
type LookupPolicy int

const (
	// PolicySpelled reports every matching (root spelling, quality) pair.
	// C# major and Db major are distinct results.
	//
	// Example:
	//   Notes   = C, E, G
	//   Results = C, C7, Cmaj7, Am7
	PolicySpelled LookupPolicy = iota

	// PolicySounding reports one chord per (sounding root, quality) pair.
	// When several spellings of a root match, a natural is kept over a
	// sharp and a sharp over a flat.
	//
	// Example:
	//   Notes    = C#, F, G#
	//   Spelled  = C#, Db, ... (both roots match)
	//   Sounding = C#, ...
	PolicySounding
)

// Compile-time check that LookupPolicy implements model.Model interface.
var _ model.Model = (*LookupPolicy)(nil)

// String constants for LookupPolicy values used in configuration files.
const (
	PolicySpelledStr  = "spelled"
	PolicySoundingStr = "sounding"
)

// String returns "spelled", "sounding" or "unknown".
func (p LookupPolicy) String() string {
	switch p {
	case PolicySpelled:
		return PolicySpelledStr
	case PolicySounding:
		return PolicySoundingStr
	default:
		return "unknown"
	}
}

// ParseLookupPolicy converts a textual representation into a LookupPolicy.
//
//	"spelled",  "Spelled",  "SPELLED"  -> PolicySpelled
//	"sounding", "Sounding", "SOUNDING" -> PolicySounding
//
// Unknown input returns a *ParseError.
func ParseLookupPolicy(str string) (LookupPolicy, error) {
	switch str {
	case PolicySpelledStr, "Spelled", "SPELLED":
		return PolicySpelled, nil
	case PolicySoundingStr, "Sounding", "SOUNDING":
		return PolicySounding, nil
	default:
		return PolicySpelled, &errors.ParseError{Type: "LookupPolicy", Value: str}
	}
}

// Valid reports whether p is one of the defined constants.
func (p LookupPolicy) Valid() bool {
	return p == PolicySpelled || p == PolicySounding
}

// MarshalJSON implements json.Marshaler for LookupPolicy.
func (p LookupPolicy) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "LookupPolicy", Value: int(p)}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON accepts "spelled", "sounding" and their variants, or the
// numbers 0 and 1.
func (p *LookupPolicy) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "LookupPolicy", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "LookupPolicy", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseLookupPolicy(str)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "LookupPolicy", Data: data, Reason: err.Error()}
	}
	if !LookupPolicy(i).Valid() {
		return &errors.UnmarshalError{Type: "LookupPolicy", Data: data, Reason: "invalid numeric value"}
	}
	*p = LookupPolicy(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler, so a LookupPolicy can be
// used as a map key or a flag value.
func (p LookupPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "LookupPolicy", Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLookupPolicy.
func (p *LookupPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseLookupPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// TypeName returns "LookupPolicy".
func (p LookupPolicy) TypeName() string {
	return "LookupPolicy"
}

// Redacted returns the same string as String.
func (p LookupPolicy) Redacted() string {
	return p.String()
}

// IsZero reports whether p is PolicySpelled, the default.
func (p LookupPolicy) IsZero() bool {
	return p == PolicySpelled
}

// Equal reports whether p and other are the same policy.
func (p LookupPolicy) Equal(other LookupPolicy) bool {
	return p == other
}

// Validate returns a *ValidationError if p is not a defined constant.
func (p LookupPolicy) Validate() error {
	if !p.Valid() {
		return &errors.ValidationError{
			Type:   "LookupPolicy",
			Reason: "must be spelled or sounding",
			Value:  int(p),
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for LookupPolicy.
func (p LookupPolicy) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "LookupPolicy", Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for LookupPolicy.
func (p *LookupPolicy) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "LookupPolicy", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseLookupPolicy(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
