package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"under cap", "a, b, c", "a, b, c"},
		{"over cap keeps five", "a,b,c,d,e,f", "a, b, c, d, e"},
		{"trims and drops empties", " a ,, b , ", "a, b"},
		{"empty", "", ""},
		{"only separators", ",,,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestDisplayTags(t *testing.T) {
	require.Equal(t, "a · b · c", DisplayTags("a, b, c"))
	// already display-formatted defaults pass through untouched
	require.Equal(t, "nothing · here · yet", DisplayTags("nothing · here · yet"))
}

func TestProfileRecord_Normalize_Caps(t *testing.T) {
	p := ProfileRecord{
		Name: strings.Repeat("n", MaxNameLen+10),
		Bio:  strings.Repeat("b", MaxBioLen+1),
		Tags: "a,b,c,d,e,f,g",
	}

	got := p.Normalize()
	require.Len(t, []rune(got.Name), MaxNameLen)
	require.Len(t, []rune(got.Bio), MaxBioLen)
	require.Len(t, SplitTags(got.Tags), MaxTagCount)
}

func TestProfileRecord_Normalize_Idempotent(t *testing.T) {
	p := ProfileRecord{Name: "Nia W.", Tags: "a,b,c,d,e,f", Bio: "hello"}
	once := p.Normalize()
	require.Equal(t, once, once.Normalize())
}

func TestProfileRecord_MergeDefaults(t *testing.T) {
	got := ProfileRecord{Name: "nia"}.MergeDefaults()
	require.Equal(t, "nia", got.Name)
	require.Equal(t, EmptyProfile().Tags, got.Tags)
	require.Equal(t, EmptyProfile().Bio, got.Bio)
	require.Empty(t, got.Avatar)
}

func TestProfileRecord_StripImages(t *testing.T) {
	p := ProfileRecord{Name: "nia", Avatar: "data:image/png;base64,xxxx", Background: "data:image/png;base64,yyyy"}
	got := p.StripImages()
	require.Empty(t, got.Avatar)
	require.Empty(t, got.Background)
	require.Equal(t, "nia", got.Name)
}
