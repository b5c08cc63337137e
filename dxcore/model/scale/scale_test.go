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

package scale

import (
	"encoding/json"
	"errors"
	"testing"

	"dirpx.dev/dxharmony/dxcore/model/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func names(cs []pitch.Class) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}
	return out
}

func TestScale_Notes(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"A minor", []string{"A", "B", "C", "D", "E", "F", "G"}},
		{"A major", []string{"A", "B", "C#", "D", "E", "F#", "G#"}},
		{"C major", []string{"C", "D", "E", "F", "G", "A", "B"}},
		{"C minor", []string{"C", "D", "Eb", "F", "G", "Ab", "Bb"}},
		{"F major", []string{"F", "G", "A", "Bb", "C", "D", "E"}},
		{"Eb minor", []string{"Eb", "F", "Gb", "Ab", "Bb", "Cb", "Db"}},
		{"F# major", []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}},
		{"G# minor", []string{"G#", "A#", "B", "C#", "D#", "E", "F#"}},
		{"Cb major", []string{"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.name)
			require.NoError(t, err)

			notes, err := s.Notes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(notes))
		})
	}
}

func TestScale_Notes_OneLetterEach(t *testing.T) {
	for _, root := range pitch.All() {
		for _, k := range []Kind{Major, Minor} {
			notes, err := New(root, k).Notes()
			if err != nil {
				var se *pitch.SpellingError
				assert.True(t, errors.As(err, &se), "%s %s: %v", root.Name(), k, err)
				continue
			}
			require.Len(t, notes, Degrees)

			seen := make(map[pitch.Letter]bool)
			for _, n := range notes {
				seen[n.Letter] = true
			}
			assert.Len(t, seen, Degrees, "%s %s repeats a letter", root.Name(), k)
		}
	}
}

func TestScale_Notes_Unspellable(t *testing.T) {
	for _, name := range []string{"B# major", "E# major", "Fb minor", "Db minor", "G# major"} {
		t.Run(name, func(t *testing.T) {
			_, err := MustParse(name).Notes()
			var se *pitch.SpellingError
			require.True(t, errors.As(err, &se))
		})
	}
}

func TestScale_Degree(t *testing.T) {
	s := MustParse("D major")

	tonic, err := s.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, pitch.Natural(pitch.D), tonic)

	third, err := s.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, pitch.Sharp(pitch.F), third)

	seventh, err := s.Degree(7)
	require.NoError(t, err)
	assert.Equal(t, pitch.Sharp(pitch.C), seventh)

	_, err = s.Degree(0)
	assert.Error(t, err)
	_, err = s.Degree(8)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Scale
	}{
		{"C major", New(pitch.Natural(pitch.C), Major)},
		{"A minor", New(pitch.Natural(pitch.A), Minor)},
		{"F# major", New(pitch.Sharp(pitch.F), Major)},
		{"Bb minor", New(pitch.Flat(pitch.B), Minor)},
		{"G major scale", New(pitch.Natural(pitch.G), Major)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{
		"", "C", "major", "c major", "Cm major", "C dorian", "C major key", "C# major scale extra",
		"A Major", "A MINOR", "A natural-minor", "A natural_minor",
		"A\tminor", "A  minor", " A minor", "A minor ", "A   minor  SCALE", "A minor Scale",
	} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { MustParse("H major") })
}

func TestScale_StringAndName(t *testing.T) {
	s := New(pitch.Flat(pitch.C), Major)
	assert.Equal(t, "B major", s.String())
	assert.Equal(t, "Cb major", s.Name())
	assert.Equal(t, s, MustParse(s.Name()))
	assert.True(t, s.Equal(MustParse(s.String())))
	assert.Equal(t, "A minor", MustParse("A minor").Redacted())
}

func TestScale_ModelMethods(t *testing.T) {
	assert.True(t, Scale{}.IsZero())
	assert.False(t, MustParse("C minor").IsZero())
	assert.Equal(t, "Scale", Scale{}.TypeName())
	assert.NoError(t, MustParse("Eb minor").Validate())
	assert.Error(t, Scale{Kind: Kind(4)}.Validate())
	assert.Error(t, Scale{Root: pitch.Class{Accidental: pitch.Accidental(7)}}.Validate())

	attrs := MustParse("Eb minor").LogValue().Group()
	require.Len(t, attrs, 2)
	assert.Equal(t, "Eb", attrs[0].Value.String())
	assert.Equal(t, "minor", attrs[1].Value.String())
}

func TestScale_JSON(t *testing.T) {
	data, err := json.Marshal(New(pitch.Sharp(pitch.E), Minor))
	require.NoError(t, err)
	assert.Equal(t, `"E# minor"`, string(data))

	var s Scale
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, New(pitch.Sharp(pitch.E), Minor), s)

	assert.Error(t, json.Unmarshal([]byte(`"E# lydian"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &s))

	_, err = json.Marshal(Scale{Kind: Kind(2)})
	assert.Error(t, err)
}

func TestScale_YAML(t *testing.T) {
	type key struct {
		Scale Scale `yaml:"scale"`
	}

	data, err := yaml.Marshal(key{Scale: MustParse("Ab major")})
	require.NoError(t, err)
	assert.Equal(t, "scale: Ab major\n", string(data))

	var k key
	require.NoError(t, yaml.Unmarshal([]byte("scale: F# minor\n"), &k))
	assert.Equal(t, MustParse("F# minor"), k.Scale)
	assert.Error(t, yaml.Unmarshal([]byte("scale: F#\n"), &k))
}

func TestKind(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  Kind
	}{
		{"major", Major},
		{"MAJOR", Major},
		{"Minor", Minor},
		{"natural_minor", Minor},
	} {
		got, err := ParseKind(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseKind("dorian")
	assert.Error(t, err)

	assert.Len(t, Major.Intervals(), Degrees)
	assert.Equal(t, 3, Minor.Intervals()[2].Semitones())
	assert.Equal(t, "unknown", Kind(3).String())
	assert.Error(t, Kind(3).Validate())

	data, err := json.Marshal(Minor)
	require.NoError(t, err)
	assert.Equal(t, `"minor"`, string(data))

	var k Kind
	require.NoError(t, json.Unmarshal([]byte(`1`), &k))
	assert.Equal(t, Minor, k)
	assert.Error(t, json.Unmarshal([]byte(`2`), &k))

	out, err := yaml.Marshal(Major)
	require.NoError(t, err)
	assert.Equal(t, "major\n", string(out))
}
