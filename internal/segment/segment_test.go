package segment

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{"empty", "", nil},
		{"single word", "Quran", []Segment{
			{Text: "Quran", Start: 0, End: 5, Kind: Word},
		}},
		{"two words", "Allahu Akbar", []Segment{
			{Text: "Allahu", Start: 0, End: 6, Kind: Word},
			{Text: " ", Start: 6, End: 7, Kind: Space},
			{Text: "Akbar", Start: 7, End: 12, Kind: Word},
		}},
		{"double space kept", "Allahu  Akbar", []Segment{
			{Text: "Allahu", Start: 0, End: 6, Kind: Word},
			{Text: "  ", Start: 6, End: 8, Kind: Space},
			{Text: "Akbar", Start: 8, End: 13, Kind: Word},
		}},
		{"leading and trailing space", " salah\t", []Segment{
			{Text: " ", Start: 0, End: 1, Kind: Space},
			{Text: "salah", Start: 1, End: 6, Kind: Word},
			{Text: "\t", Start: 6, End: 7, Kind: Space},
		}},
		{"mixed whitespace run", "a \t\n b", []Segment{
			{Text: "a", Start: 0, End: 1, Kind: Word},
			{Text: " \t\n ", Start: 1, End: 5, Kind: Space},
			{Text: "b", Start: 5, End: 6, Kind: Word},
		}},
		{"punctuation stays in word", "Akbar.", []Segment{
			{Text: "Akbar.", Start: 0, End: 6, Kind: Word},
		}},
		{"only space", "   ", []Segment{
			{Text: "   ", Start: 0, End: 3, Kind: Space},
		}},
		{"no-break space", "a\u00a0b", []Segment{
			{Text: "a", Start: 0, End: 1, Kind: Word},
			{Text: "\u00a0", Start: 1, End: 3, Kind: Space},
			{Text: "b", Start: 3, End: 4, Kind: Word},
		}},
		{"invalid utf8 is word", "\xff \xfe", []Segment{
			{Text: "\xff", Start: 0, End: 1, Kind: Word},
			{Text: " ", Start: 1, End: 2, Kind: Space},
			{Text: "\xfe", Start: 2, End: 3, Kind: Word},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Split(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Split(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitReconstructs(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Bismillahir Rahmanir Raheem",
		"  qul   huwa\tallahu\nahad  ",
		"Ṣalāh ʿaṣr",
		"\xff\xfe\x00",
		"",
	}

	for _, in := range inputs {
		var b strings.Builder
		for _, seg := range Split(in) {
			if in[seg.Start:seg.End] != seg.Text {
				t.Errorf("offset mismatch in %q: %v", in, seg)
			}
			b.WriteString(seg.Text)
		}
		if b.String() != in {
			t.Errorf("reconstruction failed: got %q, want %q", b.String(), in)
		}
	}
}

func TestSplitAlternates(t *testing.T) {
	t.Parallel()

	segs := Split(" a  b c ")
	for i := 1; i < len(segs); i++ {
		if segs[i].Kind == segs[i-1].Kind {
			t.Fatalf("adjacent segments share kind %v at %d: %v", segs[i].Kind, i, segs)
		}
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	got := Words("  Allahu  Akbar. ")
	want := []string{"Allahu", "Akbar."}
	if len(got) != len(want) {
		t.Fatalf("Words = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if Words("") != nil {
		t.Error("Words(\"\") should be nil")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if Word.String() != "Word" || Space.String() != "Space" {
		t.Errorf("unexpected names %q %q", Word, Space)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}

func FuzzSplit(f *testing.F) {
	f.Add("Allahu  Akbar")
	f.Add("")
	f.Add(" \t\n")
	f.Add("\xff\xfe")
	f.Add("Ṣalāh ʿaṣr")

	f.Fuzz(func(t *testing.T, s string) {
		var b strings.Builder
		for _, seg := range Split(s) {
			if seg.Text == "" {
				t.Fatalf("empty segment in %q", s)
			}
			b.WriteString(seg.Text)
		}
		if b.String() != s {
			t.Errorf("reconstruction failed:\ninput: %q\ngot:   %q", s, b.String())
		}
	})
}

func BenchmarkSplit(b *testing.B) {
	s := strings.Repeat("Bismillahir Rahmanir Raheem  ", 32)
	for b.Loop() {
		Split(s)
	}
}
