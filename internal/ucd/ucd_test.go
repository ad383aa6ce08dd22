package ucd

import (
	"slices"
	"strings"
	"testing"
)

const unicodeDataSample = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
01C4;LATIN CAPITAL LETTER DZ WITH CARON;Lu;0;L;<compat> 0044 017D;;;;N;LATIN CAPITAL LETTER D Z HACEK;;;01C6;01C5
01C6;LATIN SMALL LETTER DZ WITH CARON;Ll;0;L;<compat> 0064 017E;;;;N;LATIN SMALL LETTER D Z HACEK;;01C4;;01C5
0345;COMBINING GREEK YPOGEGRAMMENI;Mn;240;NSM;;;;;N;GREEK NON-SPACING IOTA BELOW;;0399;;`

const specialCasingSample = `# SpecialCasing-15.0.0.txt
# ================================================================================

00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S

FB03; FB03; 0046 0066 0069; 0046 0046 0049; # LATIN SMALL LIGATURE FFI

# Turkish and Azeri
0130; 0069 0307; 0130; 0130; # LATIN CAPITAL LETTER I WITH DOT ABOVE
0069; 0069; 0130; 0130; tr; # LATIN SMALL LETTER I
0069; 0069; 0130; 0130; az; # LATIN SMALL LETTER I
0307; ; 0307; 0307; tr After_I; # COMBINING DOT ABOVE`

func TestParseUnicodeData(t *testing.T) {
	t.Parallel()

	got, err := ParseUnicodeData(strings.NewReader(unicodeDataSample))
	if err != nil {
		t.Fatalf("ParseUnicodeData: %v", err)
	}

	want := map[rune]rune{
		0x0061: 0x0041, // a -> A
		0x01C4: 0x01C5, // Ǆ -> ǅ
		0x01C6: 0x01C5, // ǆ -> ǅ
		0x0345: 0x0399, // empty title field falls back to the uppercase field
	}
	if len(got) != len(want) {
		t.Fatalf("got %d mappings, want %d: %v", len(got), len(want), got)
	}
	for cp, tc := range want {
		if got[cp] != tc {
			t.Errorf("mapping for %#U = %#U, want %#U", cp, got[cp], tc)
		}
	}
}

func TestParseUnicodeDataErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "0041;Lu;0"},
		{"bad code point", "ZZZZ;X;Lu;0;L;;;;;N;;;;;"},
		{"bad title mapping", "0061;X;Ll;0;L;;;;;N;;;0041;;XYZ!"},
		{"out of range", "110000;X;Lu;0;L;;;;;N;;;;;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseUnicodeData(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ParseUnicodeData(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestParseSpecialCasing(t *testing.T) {
	t.Parallel()

	got, err := ParseSpecialCasing(strings.NewReader(specialCasingSample))
	if err != nil {
		t.Fatalf("ParseSpecialCasing: %v", err)
	}

	want := []SpecialEntry{
		{Code: 0x00DF, Title: []rune{0x0053, 0x0073}},
		{Code: 0xFB03, Title: []rune{0x0046, 0x0066, 0x0069}},
		{Code: 0x0130, Title: []rune{0x0130}},
		{Code: 0x0069, Title: []rune{0x0130}, Conditions: []string{"tr"}},
		{Code: 0x0069, Title: []rune{0x0130}, Conditions: []string{"az"}},
		{Code: 0x0307, Title: []rune{0x0307}, Conditions: []string{"tr", "After_I"}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		g := got[i]
		if g.Code != w.Code || !slices.Equal(g.Title, w.Title) || !slices.Equal(g.Conditions, w.Conditions) {
			t.Errorf("entry %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestParseSpecialCasingErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "00DF; 00DF"},
		{"bad code point", "XXXX; 00DF; 0053 0073; 0053 0053;"},
		{"bad title rune", "00DF; 00DF; 0053 GGGG; 0053 0053;"},
		{"empty title", "00DF; 00DF; ; 0053 0053;"},
		{"title too long", "00DF; 00DF; 0053 0073 0073 0073; 0053 0053;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseSpecialCasing(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ParseSpecialCasing(%q) succeeded, want error", tt.input)
			}
		})
	}
}
