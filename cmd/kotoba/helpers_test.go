package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

func TestParseWordSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    types.Word
		wantErr bool
	}{
		{
			name: "full spec",
			spec: "kana=ねこ,translation=cat,romaji=neko,example=ねこがいます,tags=animal;n5",
			want: types.Word{
				Kana:            "ねこ",
				Translation:     "cat",
				Romaji:          "neko",
				ExampleSentence: "ねこがいます",
				Tags:            []string{"animal", "n5"},
			},
		},
		{
			name: "minimal spec",
			spec: "kana=いぬ,translation=dog",
			want: types.Word{Kana: "いぬ", Translation: "dog"},
		},
		{
			name: "single tag",
			spec: "translation=water,tags=drink",
			want: types.Word{Translation: "water", Tags: []string{"drink"}},
		},
		{
			name:    "unknown field",
			spec:    "kana=a,color=red",
			wantErr: true,
		},
		{
			name:    "missing value separator",
			spec:    "kana",
			wantErr: true,
		},
		{
			name:    "empty word",
			spec:    "romaji=neko",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWordSpec(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %+v, got %+v", tt.want, got)
		})
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "42"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 42}, ids)

	_, err = parseIDs([]string{"1", "x"})
	require.Error(t, err)
}
