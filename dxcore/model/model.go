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

// Package model defines the contracts shared by every dxharmony value type:
// letters, accidentals, pitch classes, intervals, chords, scales and the
// enum-like qualities that classify them.
//
// All dxharmony values are small immutable values. They are produced by a
// Parse function or by interval arithmetic and are never mutated afterwards,
// so they are safe for concurrent reads without synchronization. Unmarshal
// methods are the only methods that write to their receiver.
//
// Types implementing Model can be used with the generic helpers of this
// package: ValidateAll, FilterZero, MustValidate, SafeString, ToJSON and
// ToYAML take values, FromJSON and FromYAML take pointers.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required of a
// dxharmony value type.
//
// Validatable catches values created by numeric casts or untrusted payloads;
// Serializable provides JSON and YAML round-trips; Loggable offers display
// and log representations; Identifiable supplies a stable type name used in
// error messages; ZeroCheckable reports the zero value.
//
//	var _ model.Model = (*Chord)(nil) // compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Value is the read-only half of Model: everything except the Unmarshal
// methods. Value types such as pitch.Class satisfy Value directly, while
// Model is satisfied by their pointers. The generic helpers that only read
// their argument are constrained on Value.
type Value interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that can check their own invariants.
//
// Validate MUST be fast, deterministic and free of side effects. It returns
// nil if and only if the value may be used by the theory algorithms. For
// example, a pitch.Class whose letter lies outside C..B fails validation,
// and so does an Interval such as "perfect third".
type Validatable interface {
	// Validate returns nil if the instance is valid, or a descriptive error.
	Validate() error
}

// Serializable is implemented by types that round-trip through JSON and
// YAML.
//
// Marshal methods MUST reject invalid values instead of emitting them.
// Unmarshal methods MUST validate the decoded value and MUST accept every
// form their marshal counterpart produces. For spelled values (pitch
// classes, chords, scales) the serialized form is the literal spelling, so
// that Cb survives a round-trip as Cb and does not come back as B.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that provide human-readable and
// log-safe string forms.
//
// dxharmony values carry no sensitive data, so Redacted usually returns the
// same text as String. The split is kept so that the values compose with
// the rest of the DIRPX model packages, which log through Redacted.
type Loggable interface {
	// Redacted returns a representation suitable for production logs.
	Redacted() string

	// String returns the human-readable representation.
	String() string
}

// Identifiable is implemented by types that report a constant CamelCase
// type name, such as "PitchClass" or "ChordQuality".
type Identifiable interface {
	// TypeName returns the canonical name of the model type. It SHOULD
	// return a string constant.
	TypeName() string
}

// ZeroCheckable is implemented by types that can report their zero value.
//
// Several dxharmony types have a zero value that is musically meaningful
// (the zero pitch.Class is natural C, the zero chord.Quality is Major), so
// IsZero returning true does not by itself indicate an error.
type ZeroCheckable interface {
	// IsZero reports whether the instance holds its type's zero value.
	IsZero() bool
}

// Comparable is implemented by types with a domain-specific notion of
// equality.
//
// For pitch classes, equality is defined by sounding pitch: C# and Db are
// Equal even though they are spelled differently. Callers that need
// spelling identity compare with == instead.
type Comparable[T any] interface {
	// Equal reports whether the receiver and other represent the same
	// logical value.
	Equal(other T) bool
}
