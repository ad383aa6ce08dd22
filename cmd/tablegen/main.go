// Command tablegen regenerates table.go from the Unicode Character Database.
//
// Download UnicodeData.txt and SpecialCasing.txt for the target Unicode
// version from https://www.unicode.org/Public/UCD/latest/ucd/ then run from
// the project root:
//
//	go run ./cmd/tablegen -unicodedata UnicodeData.txt -specialcasing SpecialCasing.txt
//
// Output: table.go (commit this file). Regenerate when moving to a new
// Unicode version.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"slices"

	"github.com/az-ai-labs/titlecase/internal/ucd"
)

const (
	defaultUnicodeData   = "UnicodeData.txt"
	defaultSpecialCasing = "SpecialCasing.txt"
	defaultOutput        = "table.go"
)

// entry is one generated table row: a source code point and its 1-3 rune
// titlecase expansion.
type entry struct {
	cp rune
	tc []rune
}

func main() {
	unicodeDataPath := flag.String("unicodedata", defaultUnicodeData, "path to UnicodeData.txt")
	specialCasingPath := flag.String("specialcasing", defaultSpecialCasing, "path to SpecialCasing.txt")
	outputPath := flag.String("output", defaultOutput, "output path for the generated table")
	version := flag.String("version", "15.0.0", "Unicode version recorded in the generated header")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("[tablegen] ")

	simple, err := parseUnicodeDataFile(*unicodeDataPath)
	if err != nil {
		log.Fatalf("cannot load simple mappings: %v", err)
	}
	log.Printf("loaded %d simple titlecase mappings", len(simple))

	specials, err := parseSpecialCasingFile(*specialCasingPath)
	if err != nil {
		log.Fatalf("cannot load special casing: %v", err)
	}
	log.Printf("loaded %d special casing entries", len(specials))

	defaults, turkic := buildTables(simple, specials)
	log.Printf("kept %d default and %d turkic entries", len(defaults), len(turkic))

	src, err := format.Source(render(defaults, turkic, *version))
	if err != nil {
		log.Fatalf("formatting generated source: %v", err)
	}
	if err := os.WriteFile(*outputPath, src, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *outputPath, err)
	}
	log.Printf("wrote %s", *outputPath)
}

func parseUnicodeDataFile(path string) (map[rune]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ucd.ParseUnicodeData(f)
}

func parseSpecialCasingFile(path string) ([]ucd.SpecialEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ucd.ParseSpecialCasing(f)
}

// buildTables reduces the raw UCD data to the two compiled-in tables.
//
// The default table keeps only special casing entries whose titlecase result
// differs from the simple one-to-one mapping already carried by the Go
// unicode package. The turkic table keeps the tr/az conditional entries that
// differ from the default result; contextual conditions such as After_I are
// skipped, since resolution is per code point.
func buildTables(simple map[rune]rune, specials []ucd.SpecialEntry) (defaults, turkic []entry) {
	defaultByCP := make(map[rune][]rune)
	for _, sp := range specials {
		if len(sp.Conditions) != 0 {
			continue
		}
		if len(sp.Title) == 1 && sp.Title[0] == simpleTitle(simple, sp.Code) {
			continue
		}
		if old, ok := defaultByCP[sp.Code]; ok {
			if !slices.Equal(old, sp.Title) {
				log.Fatalf("conflicting default mappings for %#U: %v vs %v", sp.Code, old, sp.Title)
			}
			continue
		}
		defaultByCP[sp.Code] = sp.Title
		defaults = append(defaults, entry{cp: sp.Code, tc: sp.Title})
	}

	turkicByCP := make(map[rune][]rune)
	for _, sp := range specials {
		if len(sp.Conditions) != 1 || (sp.Conditions[0] != "tr" && sp.Conditions[0] != "az") {
			continue
		}
		want := defaultByCP[sp.Code]
		if want == nil {
			want = []rune{simpleTitle(simple, sp.Code)}
		}
		if slices.Equal(sp.Title, want) {
			continue
		}
		// tr and az carry duplicate lines; they must agree.
		if old, ok := turkicByCP[sp.Code]; ok {
			if !slices.Equal(old, sp.Title) {
				log.Fatalf("conflicting turkic mappings for %#U: %v vs %v", sp.Code, old, sp.Title)
			}
			continue
		}
		turkicByCP[sp.Code] = sp.Title
		turkic = append(turkic, entry{cp: sp.Code, tc: sp.Title})
	}

	cmpEntry := func(a, b entry) int { return int(a.cp) - int(b.cp) }
	slices.SortFunc(defaults, cmpEntry)
	slices.SortFunc(turkic, cmpEntry)
	return defaults, turkic
}

// simpleTitle returns the simple titlecase mapping of cp, which is cp itself
// when UnicodeData.txt has no mapping.
func simpleTitle(simple map[rune]rune, cp rune) rune {
	if tc, ok := simple[cp]; ok {
		return tc
	}
	return cp
}

func render(defaults, turkic []entry, version string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by cmd/tablegen; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// Source: UnicodeData.txt and SpecialCasing.txt, Unicode %s.\n\n", version)
	b.WriteString("package titlecase\n\n")

	b.WriteString(`// specialTitleTable holds every full titlecase mapping from SpecialCasing.txt
// whose result is not the single rune produced by the simple UnicodeData.txt
// mapping. Sorted by source code point for binary search. Unused trailing
// slots are None.
`)
	b.WriteString("var specialTitleTable = [...]tableEntry{\n")
	writeEntries(&b, defaults)
	b.WriteString("}\n\n")

	b.WriteString(`// turkicTitleTable holds the Turkish/Azerbaijani conditional titlecase
// mappings from SpecialCasing.txt that differ from the default result.
// Sorted by source code point.
`)
	b.WriteString("var turkicTitleTable = [...]tableEntry{\n")
	writeEntries(&b, turkic)
	b.WriteString("}\n")
	return b.Bytes()
}

func writeEntries(b *bytes.Buffer, entries []entry) {
	for _, e := range entries {
		slots := make([]string, 3)
		for i := range slots {
			if i < len(e.tc) {
				slots[i] = fmt.Sprintf("0x%04X", e.tc[i])
			} else {
				slots[i] = "None"
			}
		}
		fmt.Fprintf(b, "\t{0x%04X, [3]rune{%s, %s, %s}},\t// U+%04X %c -> %s\n",
			e.cp, slots[0], slots[1], slots[2], e.cp, e.cp, string(e.tc))
	}
}
