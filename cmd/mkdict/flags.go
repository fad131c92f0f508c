package main

import (
	getopt "github.com/pborman/getopt/v2"

	"github.com/chronos-tachyon/wordfilter"
)

// type NormalizeModeFlag {{{

// NormalizeModeFlag implements getopt.Value for wordfilter.NormalizeMode.
//
// Only "lower" enables case folding; any other value disables normalization,
// so "-n raw" and "-n whatever" both compile a case-sensitive dictionary.
type NormalizeModeFlag struct {
	Value wordfilter.NormalizeMode
}

// Set fulfills getopt.Value.
func (flag *NormalizeModeFlag) Set(str string, opt getopt.Option) error {
	flag.Value = wordfilter.NormalizeNone
	if str == wordfilter.NormalizeLower.String() {
		flag.Value = wordfilter.NormalizeLower
	}
	return nil
}

// String fulfills getopt.Value.
func (flag NormalizeModeFlag) String() string {
	return flag.Value.String()
}

var _ getopt.Value = (*NormalizeModeFlag)(nil)

// }}}
