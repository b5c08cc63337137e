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

// Package dxharmony is the entry point of the dxharmony music-theory
// engine. It parses note, chord and scale text and renders results as the
// display strings a front end prints.
//
//	c, err := dxharmony.ParseChord("D")
//	notes, err := dxharmony.ChordNotes(c) // ["D", "F#", "A"]
//
// The value types and algorithms live in the dxcore/model packages; this
// package only glues them together. Every function is pure and safe for
// concurrent use.
package dxharmony

import (
	"dirpx.dev/dxharmony/dxcore/model/chord"
	"dirpx.dev/dxharmony/dxcore/model/pitch"
	"dirpx.dev/dxharmony/dxcore/model/scale"
)

// ParseNote parses a pitch class such as "C", "F#" or "Bb". The letter must
// be upper case. Text after the accidental is ignored.
func ParseNote(text string) (pitch.Class, error) {
	return pitch.ParseClass(text)
}

// ParseChord parses a chord symbol such as "Cm7". See chord.Parse for the
// suffix rules.
func ParseChord(text string) (chord.Chord, error) {
	return chord.Parse(text)
}

// ChordNotes returns the display strings of the chord tones, root first.
func ChordNotes(c chord.Chord) ([]string, error) {
	notes, err := c.Notes()
	if err != nil {
		return nil, err
	}
	return Display(notes), nil
}

// ParseScale parses a scale name such as "A minor".
func ParseScale(text string) (scale.Scale, error) {
	return scale.Parse(text)
}

// ScaleNotes returns the display strings of the seven scale degrees.
func ScaleNotes(s scale.Scale) ([]string, error) {
	notes, err := s.Notes()
	if err != nil {
		return nil, err
	}
	return Display(notes), nil
}

// FindMatchingChords returns every chord containing all of notes, using the
// default spelled lookup policy. Render each result with its String method.
func FindMatchingChords(notes []pitch.Class) ([]chord.Chord, error) {
	return chord.FindMatching(notes)
}

// Display renders each pitch class in its display form.
func Display(notes []pitch.Class) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}
