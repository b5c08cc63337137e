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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClass_String(t *testing.T) {
	for _, l := range Letters() {
		assert.Equal(t, l.String(), Natural(l).String(), "natural %s", l)
	}

	tests := []struct {
		class Class
		want  string
	}{
		{Sharp(C), "C#"},
		{Sharp(D), "D#"},
		{Sharp(E), "F"},
		{Sharp(F), "F#"},
		{Sharp(G), "G#"},
		{Sharp(A), "A#"},
		{Sharp(B), "C"},
		{Flat(C), "B"},
		{Flat(D), "Db"},
		{Flat(E), "Eb"},
		{Flat(F), "E"},
		{Flat(G), "Gb"},
		{Flat(A), "Ab"},
		{Flat(B), "Bb"},
	}

	for _, tt := range tests {
		t.Run(tt.class.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.String())
			assert.Equal(t, tt.want, tt.class.Redacted())
		})
	}
}

func TestClass_Name(t *testing.T) {
	assert.Equal(t, "C", Natural(C).Name())
	assert.Equal(t, "B#", Sharp(B).Name())
	assert.Equal(t, "Cb", Flat(C).Name())
	assert.Equal(t, "Fb", Flat(F).Name())
}

func TestClass_Semitone(t *testing.T) {
	tests := []struct {
		class Class
		want  int
	}{
		{Natural(C), 0},
		{Natural(D), 2},
		{Natural(E), 4},
		{Natural(F), 5},
		{Natural(G), 7},
		{Natural(A), 9},
		{Natural(B), 11},
		{Flat(C), 11},
		{Sharp(B), 0},
		{Sharp(E), 5},
		{Flat(F), 4},
		{Sharp(F), 6},
		{Flat(G), 6},
	}

	for _, tt := range tests {
		t.Run(tt.class.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.Semitone())
		})
	}
}

func TestClass_UpSemitone(t *testing.T) {
	for _, c := range All() {
		up := c.UpSemitone()
		assert.Equal(t, (c.Semitone()+1)%SemitoneCount, up.Semitone(), "up from %s", c.Name())
		assert.NotEqual(t, AccidentalFlat, up.Accidental, "up from %s introduced a flat", c.Name())
	}

	assert.Equal(t, Natural(F), Natural(E).UpSemitone())
	assert.Equal(t, Natural(C), Natural(B).UpSemitone())
	assert.Equal(t, Sharp(F), Sharp(E).UpSemitone())
	assert.Equal(t, Natural(G), Sharp(F).UpSemitone())
	assert.Equal(t, Natural(C), Flat(C).UpSemitone())
}

func TestClass_DownSemitone(t *testing.T) {
	for _, c := range All() {
		down := c.DownSemitone()
		assert.Equal(t, (c.Semitone()+SemitoneCount-1)%SemitoneCount, down.Semitone(), "down from %s", c.Name())
		assert.True(t, c.Equal(down.UpSemitone()))
	}

	assert.Equal(t, Natural(E), Natural(F).DownSemitone())
	assert.Equal(t, Flat(B), Flat(C).DownSemitone())
}

func TestClass_UpSemitones(t *testing.T) {
	for _, c := range All() {
		assert.True(t, c.Equal(c.UpSemitones(SemitoneCount)), "octave from %s", c.Name())
		assert.True(t, c.Equal(c.UpSemitones(5).DownSemitones(5)))
		assert.True(t, c.UpSemitones(-3).Equal(c.DownSemitones(3)))
	}
	assert.Equal(t, Sharp(F), Natural(D).UpSemitones(4))
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Class
		wantErr bool
	}{
		{"natural", "C", Natural(C), false},
		{"sharp", "F#", Sharp(F), false},
		{"flat", "Bb", Flat(B), false},
		{"trailing text ignored", "C#m7", Sharp(C), false},
		{"unknown accidental ignored", "Ex", Natural(E), false},

		{"empty", "", Class{}, true},
		{"lowercase letter", "c", Class{}, true},
		{"letter H", "H", Class{}, true},
		{"sign first", "#C", Class{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClass(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Same(got), "got %s, want %s", got.Name(), tt.want.Name())
		})
	}
}

func TestScan(t *testing.T) {
	c, rest, err := Scan("Ebmaj7")
	require.NoError(t, err)
	assert.Equal(t, Flat(E), c)
	assert.Equal(t, "maj7", rest)

	c, rest, err = Scan("A minor")
	require.NoError(t, err)
	assert.Equal(t, Natural(A), c)
	assert.Equal(t, " minor", rest)
}

func TestParseClass_DisplayRoundTrip(t *testing.T) {
	for _, c := range All() {
		parsed, err := ParseClass(c.String())
		require.NoError(t, err, c.Name())
		assert.True(t, c.Equal(parsed), "%s displayed as %s parsed as %s", c.Name(), c.String(), parsed.Name())

		byName, err := ParseClass(c.Name())
		require.NoError(t, err)
		assert.True(t, c.Same(byName))
	}
}

func TestMustParseClass(t *testing.T) {
	assert.Equal(t, Sharp(G), MustParseClass("G#"))
	assert.Panics(t, func() { MustParseClass("G#m") })
	assert.Panics(t, func() { MustParseClass("g") })
}

func TestClass_EqualAndCompare(t *testing.T) {
	assert.True(t, Sharp(C).Equal(Flat(D)))
	assert.False(t, Sharp(C).Same(Flat(D)))
	assert.True(t, Sharp(B).Equal(Natural(C)))
	assert.False(t, Natural(C).Equal(Natural(D)))

	assert.Equal(t, 0, Sharp(C).Compare(Flat(D)))
	assert.Equal(t, -1, Natural(C).Compare(Natural(D)))
	assert.Equal(t, 1, Flat(C).Compare(Natural(A)))
}

func TestClass_Validate(t *testing.T) {
	for _, c := range All() {
		assert.NoError(t, c.Validate())
	}
	assert.Error(t, Class{Letter: Letter(7)}.Validate())
	assert.Error(t, Class{Letter: C, Accidental: Accidental(3)}.Validate())
}

func TestClass_ModelMethods(t *testing.T) {
	assert.Equal(t, "PitchClass", Natural(C).TypeName())
	assert.True(t, Class{}.IsZero())
	assert.True(t, Natural(C).IsZero())
	assert.False(t, Sharp(C).IsZero())
	assert.Len(t, All(), ClassCount)
	assert.Equal(t, Natural(E), Flat(E).Natural())
}

func TestClass_LogValue(t *testing.T) {
	v := Flat(B).LogValue()
	attrs := v.Group()
	require.Len(t, attrs, 2)
	assert.Equal(t, "name", attrs[0].Key)
	assert.Equal(t, "Bb", attrs[0].Value.String())
	assert.Equal(t, int64(10), attrs[1].Value.Int64())
}

func TestClass_JSON(t *testing.T) {
	data, err := json.Marshal([]Class{Flat(C), Sharp(E), Natural(G)})
	require.NoError(t, err)
	assert.Equal(t, `["Cb","E#","G"]`, string(data))

	var got []Class
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []Class{Flat(C), Sharp(E), Natural(G)}, got)

	var c Class
	assert.Error(t, json.Unmarshal([]byte(`"C#m"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`"h"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`3`), &c))

	_, err = json.Marshal(Class{Letter: Letter(9)})
	assert.Error(t, err)
}

func TestClass_YAML(t *testing.T) {
	data, err := yaml.Marshal(Flat(F))
	require.NoError(t, err)
	assert.Equal(t, "Fb\n", string(data))

	var c Class
	require.NoError(t, yaml.Unmarshal([]byte("A#"), &c))
	assert.Equal(t, Sharp(A), c)
	assert.Error(t, yaml.Unmarshal([]byte("Q"), &c))
}
