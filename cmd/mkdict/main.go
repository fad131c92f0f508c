// Command mkdict compiles a word list into an FCF3 dictionary for the
// wordfilter package.
package main

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chronos-tachyon/wordfilter"
)

const version = "mkdict (devel)"

var (
	flagVersion   = false
	flagDebug     = false
	flagLogStderr = false

	flagInput     = ""
	flagOutput    = ""
	flagNormalize = NormalizeModeFlag{wordfilter.NormalizeLower}
)

func init() {
	getopt.SetParameters("")

	getopt.FlagLong(&flagVersion, "version", 'V', "print version and exit")
	getopt.FlagLong(&flagDebug, "verbose", 'v', "enable debug logging")
	getopt.FlagLong(&flagLogStderr, "log-stderr", 'L', "log JSON to stderr")

	getopt.FlagLong(&flagInput, "input", 'i', "source word list; one word per line, or comma-separated")
	getopt.FlagLong(&flagOutput, "output", 'o', "destination dictionary file")
	getopt.FlagLong(&flagNormalize, "normalize", 'n', "normalization mode; \"lower\" folds case, any other value disables folding")
}

func main() {
	getopt.Parse()

	if flagVersion {
		fmt.Println(strings.TrimSpace(version))
		os.Exit(0)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Second
	zerolog.DurationFieldInteger = false
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch {
	case flagLogStderr:
		// do nothing

	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	if flagInput == "" {
		log.Fatal().Msg("missing required flag -i / --input")
	}
	if flagOutput == "" {
		log.Fatal().Msg("missing required flag -o / --output")
	}

	inFile, err := os.Open(flagInput)
	if err != nil {
		log.Fatal().Str("path", flagInput).Err(err).Msg("failed to open word list")
	}

	words, err := wordfilter.ParseWordList(inFile)
	if err != nil {
		_ = inFile.Close()
		log.Fatal().Str("path", flagInput).Err(err).Msg("failed to read word list")
	}
	if err := inFile.Close(); err != nil {
		log.Fatal().Str("path", flagInput).Err(err).Msg("failed to close word list")
	}
	log.Debug().Int("entries", len(words)).Msg("word list parsed")

	dict, err := wordfilter.Compile(words, flagNormalize.Value)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compile dictionary")
	}
	log.Debug().
		Int("words", dict.NumWords()).
		Int("nodes", dict.NumNodes()).
		Int("edges", dict.NumEdges()).
		Msg("dictionary compiled")

	outFile, err := os.Create(flagOutput)
	if err != nil {
		log.Fatal().Str("path", flagOutput).Err(err).Msg("failed to create output file")
	}
	if err := dict.Encode(outFile); err != nil {
		_ = outFile.Close()
		_ = os.Remove(flagOutput)
		log.Fatal().Str("path", flagOutput).Err(err).Msg("failed to write dictionary")
	}
	if err := outFile.Close(); err != nil {
		_ = os.Remove(flagOutput)
		log.Fatal().Str("path", flagOutput).Err(err).Msg("failed to close dictionary")
	}

	log.Info().
		Str("path", flagOutput).
		Int("words", dict.NumWords()).
		Stringer("normalize", flagNormalize.Value).
		Msg("dictionary written")
}
