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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates every model in the slice and returns one combined
// error describing all failures, or nil if every model is valid.
//
// Each failure is annotated with the element's index and TypeName, so a
// caller that passed a list of notes learns which note was rejected:
//
//	model[2] (PitchClass): dxharmony: invalid PitchClass.Letter: ...
//
// The whole slice is always processed; an empty slice is valid.
func ValidateAll[T Value](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice holding the models whose IsZero reports
// false. The result never aliases the input and is non-nil.
func FilterZero[T Value](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate returns m unchanged if it is valid and panics otherwise.
//
// It is intended for package-level tables and tests, where an invalid value
// is a programming error.
func MustValidate[T Value](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// ContainsEqual reports whether some element of xs is Equal to v. Unlike
// slices.Contains it uses the domain equality, so a list holding Db
// contains C#.
func ContainsEqual[T Comparable[T]](xs []T, v T) bool {
	for _, x := range xs {
		if x.Equal(v) {
			return true
		}
	}
	return false
}

// SafeString returns m.Redacted(), or m.String() when unsafe is true.
func SafeString[T Value](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and encodes it with encoding/json.
func ToJSON[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and encodes it with gopkg.in/yaml.v3.
func ToYAML[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes data into m and validates the result. If FromJSON
// returns an error the content of m is undefined and MUST NOT be used.
func FromJSON[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML decodes data into m and validates the result. It is the entry
// point for loading configuration objects such as chord.Lookup from files.
//
//	var l chord.Lookup
//	if err := model.FromYAML(data, &l); err != nil {
//	    return err
//	}
func FromYAML[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
