package wordfilter

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/hashicorp/go-multierror"
)

// Option represents a configuration option for Filter.
type Option func(*options)

type options struct {
	mode         NormalizeMode
	maskChar     rune
	fixedMask    string
	hasFixedMask bool
}

func (o *options) reset() {
	*o = options{
		mode:     NormalizeLower,
		maskChar: '*',
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

func (o *options) validate() error {
	var errlist []error

	errlist = checkOptionMaskChar(*o, errlist)
	errlist = checkOptionFixedMask(*o, errlist)

	if len(errlist) == 0 {
		return nil
	}
	if len(errlist) == 1 {
		return errlist[0]
	}
	return &multierror.Error{Errors: errlist}
}

func checkOptionMaskChar(o options, errlist []error) []error {
	ch := o.maskChar
	if ch == 0 {
		errlist = append(errlist, errors.New("mask character is NUL"))
	}
	if ch >= surr1 && ch < surr3 {
		errlist = append(errlist, fmt.Errorf("mask character %#04x is a surrogate half", ch))
	}
	if ch > 0xffff {
		errlist = append(errlist, fmt.Errorf("mask character %#x is outside the Basic Multilingual Plane", ch))
	}
	return errlist
}

func checkOptionFixedMask(o options, errlist []error) []error {
	if o.hasFixedMask && utf16Length(o.fixedMask) > stackBufferUnits {
		errlist = append(errlist, fmt.Errorf("fixed mask is %d code units long, longer than the %d-unit limit", utf16Length(o.fixedMask), stackBufferUnits))
	}
	return errlist
}

// WithNormalizeMode specifies the NormalizeMode applied to input text before
// matching.  It must match the mode the dictionary was compiled with for
// case-insensitive matching; a mismatch is not detected and simply yields
// case-sensitive behavior.
func WithNormalizeMode(mode NormalizeMode) Option {
	assert.Assertf(mode.IsValid(), "invalid NormalizeMode %d", uint(mode))
	return func(o *options) { o.mode = mode }
}

// WithMaskChar specifies the code unit Mask substitutes for each code unit
// of a match.  The default is '*'.
func WithMaskChar(ch rune) Option {
	return func(o *options) { o.maskChar = ch }
}

// WithFixedMask specifies a string Mask substitutes for each whole match,
// regardless of match length.  Without it, Mask preserves the input length
// by replacing code units one for one with the mask character.
func WithFixedMask(mask string) Option {
	return func(o *options) {
		o.fixedMask = mask
		o.hasFixedMask = true
	}
}
