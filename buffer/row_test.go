package buffer

import "testing"

func TestRow_LenCountsGraphemes(t *testing.T) {
	r := NewRow("aé\U0001F44B\U0001F3FDb")
	if got := r.Len(); got != 4 {
		t.Fatalf("len=%d, want %d", got, 4)
	}
	if got := r.Text(); got != "aé\U0001F44B\U0001F3FDb" {
		t.Fatalf("text=%q", got)
	}
}

func TestRow_RenderClampsWindow(t *testing.T) {
	r := NewRow("hello")

	cases := []struct {
		start, end int
		want       string
	}{
		{0, 5, "hello"},
		{3, 10, "lo"},
		{1, 3, "el"},
		{4, 2, ""},
		{7, 9, ""},
		{-2, 2, "he"},
		{0, 0, ""},
	}
	for _, tc := range cases {
		if got := r.Render(tc.start, tc.end); got != tc.want {
			t.Fatalf("Render(%d,%d)=%q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestRow_RenderExpandsTabs(t *testing.T) {
	r := NewRow("a\tb\t")
	if got, want := r.Render(0, r.Len()), "a  b  "; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
	if got, want := r.Render(1, 2), "  "; got != want {
		t.Fatalf("render tab only=%q, want %q", got, want)
	}
}

func TestRow_RenderKeepsClustersWhole(t *testing.T) {
	r := NewRow("xéy")
	if got, want := r.Render(1, 2), "é"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

type byteSegmenter struct{}

func (byteSegmenter) Split(text string) []string {
	out := make([]string, 0, len(text))
	for i := 0; i < len(text); i++ {
		out = append(out, text[i:i+1])
	}
	return out
}

func TestRow_UsesInjectedSegmenter(t *testing.T) {
	r := NewRowWith(byteSegmenter{}, "é")
	if got := r.Len(); got != 2 {
		t.Fatalf("len with byte segmenter=%d, want %d", got, 2)
	}
}
