// Package ucd parses the two Unicode Character Database files the titlecase
// tables are generated from: UnicodeData.txt and SpecialCasing.txt.
//
// Only the fields relevant to titlecasing are extracted. The parsers are
// consumed by cmd/tablegen at regeneration time; the library itself never
// reads UCD files at runtime.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// UnicodeData.txt field layout (indices into the semicolon-separated line).
const (
	unicodeDataFields = 15
	upperField        = 12
	titleField        = 14
)

// maxTitleRunes is the longest full titlecase mapping in SpecialCasing.txt.
const maxTitleRunes = 3

// SpecialEntry is one data line of SpecialCasing.txt, reduced to its
// titlecase mapping.
type SpecialEntry struct {
	Code       rune
	Title      []rune   // full titlecase mapping, 1 to 3 runes
	Conditions []string // e.g. ["tr"]; empty for unconditional entries
}

// ParseUnicodeData reads UnicodeData.txt and returns the simple titlecase
// mappings that differ from the code point itself. Per the UCD file format,
// an empty titlecase field falls back to the simple uppercase field.
func ParseUnicodeData(r io.Reader) (map[rune]rune, error) {
	out := make(map[rune]rune)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		fields := strings.Split(text, ";")
		if len(fields) != unicodeDataFields {
			return nil, fmt.Errorf("UnicodeData.txt:%d: %d fields, want %d", line, len(fields), unicodeDataFields)
		}
		cp, err := parseRune(fields[0])
		if err != nil {
			return nil, fmt.Errorf("UnicodeData.txt:%d: %w", line, err)
		}
		title := fields[titleField]
		if title == "" {
			title = fields[upperField]
		}
		if title == "" {
			continue // titlecase is the code point itself
		}
		tc, err := parseRune(title)
		if err != nil {
			return nil, fmt.Errorf("UnicodeData.txt:%d: %w", line, err)
		}
		if tc != cp {
			out[cp] = tc
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading UnicodeData.txt: %w", err)
	}
	return out, nil
}

// ParseSpecialCasing reads SpecialCasing.txt and returns one entry per data
// line, comments and blank lines skipped. Entries are returned in file
// order, conditional ones included; filtering is up to the caller.
func ParseSpecialCasing(r io.Reader) ([]SpecialEntry, error) {
	var entries []SpecialEntry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		// <code>; <lower>; <title>; <upper>; (<conditions>;)?
		fields := strings.Split(text, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("SpecialCasing.txt:%d: %d fields, want at least 4", line, len(fields))
		}
		cp, err := parseRune(fields[0])
		if err != nil {
			return nil, fmt.Errorf("SpecialCasing.txt:%d: %w", line, err)
		}
		title, err := parseRunes(fields[2])
		if err != nil {
			return nil, fmt.Errorf("SpecialCasing.txt:%d: title mapping: %w", line, err)
		}
		if len(title) == 0 || len(title) > maxTitleRunes {
			return nil, fmt.Errorf("SpecialCasing.txt:%d: title mapping has %d runes, want 1-%d", line, len(title), maxTitleRunes)
		}
		var conds []string
		if len(fields) >= 5 && fields[4] != "" {
			conds = strings.Fields(fields[4])
		}
		entries = append(entries, SpecialEntry{Code: cp, Title: title, Conditions: conds})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading SpecialCasing.txt: %w", err)
	}
	return entries, nil
}

// parseRune parses a hexadecimal code point like "1FB2".
func parseRune(s string) (rune, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("code point %q: %w", s, err)
	}
	if v > unicode.MaxRune {
		return 0, fmt.Errorf("code point %q beyond U+10FFFF", s)
	}
	return rune(v), nil
}

// parseRunes parses a space-separated code point sequence like "0053 0073".
func parseRunes(s string) ([]rune, error) {
	parts := strings.Fields(s)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseRune(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
