// Package builder provides label schemes that render dense node ids as
// human-readable strings (for stepper tables and CLI output).
package builder

import (
	"fmt"
	"slices"
	"strconv"
)

// IDFn renders a node id as a label.
// It must be a pure, deterministic function of idx.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 0→"0", 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	slices.Reverse(runes)

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal representation of idx,
// e.g. 0→"0", 10→"a", 255→"ff". Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// Label scheme names accepted by LabelScheme.
const (
	SchemeDecimal      = "decimal"
	SchemeLetters      = "letters"
	SchemeHex          = "hex"
	SchemeAlphanumeric = "alnum"
)

// LabelScheme resolves a scheme name to its IDFn. The empty name means
// SchemeDecimal.
func LabelScheme(name string) (IDFn, error) {
	switch name {
	case "", SchemeDecimal:
		return DefaultIDFn, nil
	case SchemeLetters:
		return ExcelColumnIDFn, nil
	case SchemeHex:
		return HexIDFn, nil
	case SchemeAlphanumeric:
		return AlphanumericIDFn, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}
