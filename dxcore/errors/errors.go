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

// Package errors provides the error types shared by the dxharmony model
// packages (pitch, interval, chord, scale).
//
// Two classes of failure exist in dxharmony. Text that does not describe a
// note, interval, chord or scale is ordinary user input and is reported with
// the recoverable error types of this package. Misuse of the theory tables
// (for example an interval such as a "major fifth") is a programming error
// and panics in the package that detects it; such failures never reach this
// package.
//
// # Error Types
//
//   - ParseError
//     Returned by the ParseXxx functions when text cannot be interpreted.
//     The external front end is expected to surface it as a rejection
//     message ("no matching chord for this text").
//
//   - MarshalError
//     Returned by MarshalJSON / MarshalYAML / MarshalText when an enum-like
//     value lies outside its defined constants.
//
//   - UnmarshalError
//     Returned by the unmarshal methods when the payload is empty, of the
//     wrong JSON kind, or resolves to an invalid value.
//
//   - ValidationError
//     Returned by Validate() methods.
//
// # Usage
//
//	func ParseKind(s string) (Kind, error) {
//	    switch s {
//	    case "major":
//	        return Major, nil
//	    case "minor":
//	        return Minor, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "ScaleKind", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when text cannot be parsed into a dxharmony value.
//
// Type identifies the logical type being parsed (for example "PitchClass",
// "Chord", "Scale"), and Value holds the exact input. Reason is optional and
// narrows down which part of the input was rejected.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Chord").
	Type string

	// Value is the text that could not be interpreted.
	Value string

	// Reason optionally describes the rejected part of Value, for example
	// "unknown letter 'H'". May be empty.
	Reason string
}

// Error implements the error interface for ParseError.
//
// The message format is:
//
//	"dxharmony: invalid {Type} value: {Value}"
//	"dxharmony: invalid {Type} value: {Value} ({Reason})"
//
// The second form is used when Reason is set.
func (e *ParseError) Error() string {
	msg := "dxharmony: invalid " + e.Type + " value: " + e.Value
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// MarshalError is returned when an enum-like value outside its defined
// constants is serialized.
//
// In practice a MarshalError means a numeric cast or a zero-initialized
// field slipped past validation.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is:
//
//	"dxharmony: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxharmony: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when decoding a payload into a dxharmony value
// fails.
//
// Data holds the raw payload and is deliberately left out of Error() so that
// large documents do not end up in single log lines.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure, such as
	// "empty data" or "invalid numeric value".
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is:
//
//	"dxharmony: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxharmony: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate() methods.
//
// Field is empty when the failure concerns the value as a whole (an enum
// constant out of range) and set when a single struct field is at fault
// (for example Chord.Root).
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the offending field. May be empty.
	Field string

	// Reason explains why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is:
//
//	"dxharmony: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxharmony: invalid {Type}: {Reason}"         (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxharmony: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxharmony: invalid " + e.Type + ": " + e.Reason
}
