package textcase

import "testing"

func TestComposeNFC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii only", "rahman", "rahman"},
		{"empty", "", ""},
		{"already NFC", "raḥmān", "raḥmān"},
		{"a macron", "a\u0304", "ā"},
		{"h dot below", "h\u0323", "ḥ"},
		{"S dot below upper", "S\u0323alāh", "Ṣalāh"},
		{"mixed NFC and NFD", "ḥa\u0304", "ḥā"},
		{"modifier letters untouched", "ʿʾ", "ʿʾ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComposeNFC(tt.input); got != tt.want {
				t.Errorf("ComposeNFC(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsNFC(t *testing.T) {
	t.Parallel()

	if !IsNFC("\u0101") {
		t.Error("IsNFC(U+0101) = false")
	}
	if IsNFC("a\u0304") {
		t.Error("IsNFC(a+U+0304) = true")
	}
}

func BenchmarkComposeNFC_ASCII(b *testing.B) {
	s := "Bismillahir Rahmanir Raheem"
	for b.Loop() {
		ComposeNFC(s)
	}
}

func BenchmarkComposeNFC_Decomposed(b *testing.B) {
	s := "Bismilla\u0304hir Rah\u0323ma\u0304nir"
	for b.Loop() {
		ComposeNFC(s)
	}
}
