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

// upTable maps every pitch class to one semitone above it, indexed by
// [Letter][Accidental]. Naturals stay natural across E-F and B-C and gain a
// sharp elsewhere; sharps move to the next natural; flats drop their
// accidental. No entry introduces a double accidental.
var upTable = [LetterCount][AccidentalCount]Class{
	C: {Sharp(C), Natural(D), Natural(C)},
	D: {Sharp(D), Natural(E), Natural(D)},
	E: {Natural(F), Sharp(F), Natural(E)},
	F: {Sharp(F), Natural(G), Natural(F)},
	G: {Sharp(G), Natural(A), Natural(G)},
	A: {Sharp(A), Natural(B), Natural(A)},
	B: {Natural(C), Sharp(C), Natural(B)},
}

// downTable is the mirror of upTable: one semitone below each class.
var downTable = [LetterCount][AccidentalCount]Class{
	C: {Natural(B), Natural(C), Flat(B)},
	D: {Flat(D), Natural(D), Natural(C)},
	E: {Flat(E), Natural(E), Natural(D)},
	F: {Natural(E), Natural(F), Flat(E)},
	G: {Flat(G), Natural(G), Natural(F)},
	A: {Flat(A), Natural(A), Natural(G)},
	B: {Flat(B), Natural(B), Natural(A)},
}

// UpSemitone returns the pitch class one semitone above c, spelled without
// double accidentals. For example E becomes F, F# becomes G and E# becomes
// F#.
//
// UpSemitone panics if c is not valid.
func (c Class) UpSemitone() Class {
	return upTable[c.Letter][c.Accidental]
}

// DownSemitone returns the pitch class one semitone below c. For example F
// becomes E, Gb becomes F and Cb becomes Bb.
//
// DownSemitone panics if c is not valid.
func (c Class) DownSemitone() Class {
	return downTable[c.Letter][c.Accidental]
}

// UpSemitones walks n semitones upwards one step at a time. Negative n
// walks downwards. The result has the right pitch but not necessarily the
// spelling a musician would choose; Above corrects that.
func (c Class) UpSemitones(n int) Class {
	if n < 0 {
		return c.DownSemitones(-n)
	}
	for i := 0; i < n; i++ {
		c = c.UpSemitone()
	}
	return c
}

// DownSemitones walks n semitones downwards. Negative n walks upwards.
func (c Class) DownSemitones(n int) Class {
	if n < 0 {
		return c.UpSemitones(-n)
	}
	for i := 0; i < n; i++ {
		c = c.DownSemitone()
	}
	return c
}
