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
	"strconv"

	"dirpx.dev/dxharmony/dxcore/model/interval"
)

// SpellingError is returned when the note an interval away from a root
// needs a double accidental. The major third above B#, for example, sounds
// as E but its letter must be D, two semitones below; the 21 classes of
// this package cannot spell it.
type SpellingError struct {
	// Root is the pitch class the interval was measured from.
	Root Class

	// Interval is the requested interval.
	Interval interval.Interval

	// Below is true for intervals measured downwards.
	Below bool

	// Letter is the letter the result must carry.
	Letter Letter

	// Offset is the distance in semitones from the natural Letter to the
	// sounding result, folded into -6..+5.
	Offset int
}

// Error implements the error interface.
func (e *SpellingError) Error() string {
	dir := "above"
	if e.Below {
		dir = "below"
	}
	return "dxharmony: cannot spell " + e.Interval.String() + " " + dir + " " + e.Root.Name() +
		": " + e.Letter.String() + " would need an offset of " + strconv.Itoa(e.Offset) + " semitones"
}

// Above returns the pitch class iv above c, spelled with the letter that is
// iv.Number-1 steps above c's letter.
//
// The sounding pitch is found by walking iv.Semitones() semitones up from
// c; the result is then respelled onto the target letter as natural, sharp
// or flat. If that needs more than one accidental, Above returns a
// *SpellingError.
//
// Above panics if iv is not a valid interval.
func (c Class) Above(iv interval.Interval) (Class, error) {
	target := c.Letter.Successor(iv.Steps())
	sounding := c.UpSemitones(iv.Semitones())
	return respell(c, iv, false, target, sounding)
}

// Below returns the pitch class iv below c, spelled with the letter that is
// iv.Number-1 steps below c's letter. The major third below E is C, the
// minor third below C is A.
func (c Class) Below(iv interval.Interval) (Class, error) {
	target := c.Letter.Successor(-iv.Steps())
	sounding := c.DownSemitones(iv.Semitones())
	return respell(c, iv, true, target, sounding)
}

// MustAbove is like Above but panics on error. It is meant for roots known
// to be spellable, such as naturals in tests and tables.
func (c Class) MustAbove(iv interval.Interval) Class {
	out, err := c.Above(iv)
	if err != nil {
		panic(err)
	}
	return out
}

func respell(root Class, iv interval.Interval, below bool, target Letter, sounding Class) (Class, error) {
	offset := (sounding.Semitone() - target.Semitone()) % SemitoneCount
	if offset < 0 {
		offset += SemitoneCount
	}
	if offset > SemitoneCount/2-1 {
		offset -= SemitoneCount
	}

	switch offset {
	case 0:
		return Natural(target), nil
	case 1:
		return Sharp(target), nil
	case -1:
		return Flat(target), nil
	default:
		return Class{}, &SpellingError{
			Root:     root,
			Interval: iv,
			Below:    below,
			Letter:   target,
			Offset:   offset,
		}
	}
}
