package streams

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChapterStart(t *testing.T) {
	cases := []struct {
		name string
		want time.Duration
		ok   bool
	}{
		{name: "00:00:00.000", want: 0, ok: true},
		{name: "00:05:00.000", want: 5 * time.Minute, ok: true},
		{name: "01:02:03.456", want: time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond, ok: true},
		{name: "Ch1"},
		{name: "00:05:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Chapter{Name: tc.name}.Start()
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestChapterTitle(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "en:Chapter 1", want: "Chapter 1"},
		{text: "fre:Générique", want: "Générique"},
		{text: "Chapter 1", want: "Chapter 1"},
		{text: "Part 2: The Return", want: "Part 2: The Return"},
		{text: "EN:Loud", want: "EN:Loud"},
		{text: "", want: ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Chapter{Text: tc.text}.Title(), tc.text)
	}
}

func TestChaptersTextMissing(t *testing.T) {
	chapters := Chapters{{Name: "a", Text: "1"}}

	_, ok := chapters.Text("b")
	require.False(t, ok)
	require.Empty(t, Chapters{}.Names())
}
