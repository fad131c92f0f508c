package wordfilter

import (
	"github.com/chronos-tachyon/enumhelper"
)

// NormalizeMode selects the text normalization applied to dictionary words
// at compile time and to input text at match time.  The two sides must use
// the same mode for case-insensitive matching to work.
type NormalizeMode byte

const (
	// NormalizeNone leaves code units untouched; matching is case-sensitive.
	NormalizeNone NormalizeMode = iota

	// NormalizeLower folds each code unit to lowercase (simple per-unit
	// folding within the Basic Multilingual Plane).
	NormalizeLower
)

var normalizeModeData = []enumhelper.EnumData{
	{GoName: "NormalizeNone", Name: "none", Aliases: []string{"off"}},
	{GoName: "NormalizeLower", Name: "lower", Aliases: []string{strDefault}},
}

// IsValid returns true if mode is a valid NormalizeMode constant.
func (mode NormalizeMode) IsValid() bool {
	return mode >= NormalizeNone && mode <= NormalizeLower
}

// GoString returns the Go string representation of this NormalizeMode constant.
func (mode NormalizeMode) GoString() string {
	return enumhelper.DereferenceEnumData("NormalizeMode", normalizeModeData, uint(mode)).GoName
}

// String returns the string representation of this NormalizeMode constant.
func (mode NormalizeMode) String() string {
	return enumhelper.DereferenceEnumData("NormalizeMode", normalizeModeData, uint(mode)).Name
}

// MarshalJSON returns the JSON representation of this NormalizeMode constant.
func (mode NormalizeMode) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("NormalizeMode", normalizeModeData, uint(mode))
}

// Parse parses a string representation of a NormalizeMode constant.
func (mode *NormalizeMode) Parse(str string) error {
	value, err := enumhelper.ParseEnum("NormalizeMode", normalizeModeData, str)
	*mode = NormalizeMode(value)
	return err
}
