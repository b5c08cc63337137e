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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetter_Positions(t *testing.T) {
	tests := []struct {
		letter   Letter
		index    int
		semitone int
	}{
		{C, 0, 0},
		{D, 1, 2},
		{E, 2, 4},
		{F, 3, 5},
		{G, 4, 7},
		{A, 5, 9},
		{B, 6, 11},
	}

	for _, tt := range tests {
		t.Run(tt.letter.String(), func(t *testing.T) {
			assert.Equal(t, tt.index, tt.letter.Index())
			assert.Equal(t, tt.semitone, tt.letter.Semitone())
		})
	}
}

func TestLetter_Successor(t *testing.T) {
	tests := []struct {
		name string
		from Letter
		n    int
		want Letter
	}{
		{"same", C, 0, C},
		{"third above C", C, 2, E},
		{"fifth above A", A, 4, E},
		{"wrap B to C", B, 1, C},
		{"octave", G, 7, G},
		{"below C", C, -1, B},
		{"far below", D, -9, B},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Successor(tt.n))
		})
	}
}

func TestLetter_Distance(t *testing.T) {
	assert.Equal(t, 2, C.Distance(E))
	assert.Equal(t, 5, E.Distance(C))
	assert.Equal(t, 0, G.Distance(G))
	for _, l := range Letters() {
		for n := 0; n < LetterCount; n++ {
			assert.Equal(t, n, l.Distance(l.Successor(n)))
		}
	}
}

func TestParseLetter(t *testing.T) {
	for _, l := range Letters() {
		got, err := ParseLetter(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	for _, bad := range []string{"", "c", "H", "CC", "#"} {
		_, err := ParseLetter(bad)
		assert.Error(t, err, bad)
	}
}

func TestLetter_Text(t *testing.T) {
	data, err := F.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "F", string(data))

	var l Letter
	require.NoError(t, l.UnmarshalText([]byte("A")))
	assert.Equal(t, A, l)
	assert.Error(t, l.UnmarshalText([]byte("a")))

	_, err = Letter(12).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "?", Letter(12).String())
}

func TestAccidental(t *testing.T) {
	tests := []struct {
		acc    Accidental
		offset int
		sign   string
		name   string
	}{
		{AccidentalNatural, 0, "", "natural"},
		{AccidentalSharp, 1, "#", "sharp"},
		{AccidentalFlat, -1, "b", "flat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.offset, tt.acc.Offset())
			assert.Equal(t, tt.sign, tt.acc.Sign())
			assert.Equal(t, tt.name, tt.acc.String())
			assert.True(t, tt.acc.Valid())

			bySign, err := ParseAccidental(tt.sign)
			require.NoError(t, err)
			assert.Equal(t, tt.acc, bySign)

			data, err := tt.acc.MarshalText()
			require.NoError(t, err)
			var back Accidental
			require.NoError(t, back.UnmarshalText(data))
			assert.Equal(t, tt.acc, back)
		})
	}

	_, err := ParseAccidental("x")
	assert.Error(t, err)
	assert.False(t, Accidental(3).Valid())
	assert.Equal(t, "unknown", Accidental(3).String())
}
