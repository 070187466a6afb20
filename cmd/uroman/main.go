package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/jusunglee/uroman"
	"github.com/jusunglee/uroman/internal/logger"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	log := logger.New()

	fs := ff.NewFlagSet("uroman")
	var (
		lcode         = fs.StringLong("lcode", "", "ISO 639 language code for rule disambiguation")
		format        = fs.StringLong("format", "str", "Output format: str, edges, alts, or lattice")
		inputPath     = fs.StringLong("input", "", "Input file (default stdin)")
		outputPath    = fs.StringLong("output", "", "Output file (default stdout)")
		decodeUnicode = fs.BoolLong("decode-unicode", "Decode \\uXXXX escape sequences before romanizing")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("UROMAN")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	romFormat, err := uroman.ParseFormat(*format)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	engine := uroman.New()
	if err := engine.RomanizeFile(in, out, uroman.FileOptions{
		LCode:         *lcode,
		Format:        romFormat,
		DecodeUnicode: *decodeUnicode,
	}); err != nil {
		return err
	}

	log.Debug("done", "format", romFormat.String(), "lcode", *lcode)
	return nil
}
