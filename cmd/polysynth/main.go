// SPDX-License-Identifier: EPL-2.0

// Command polysynth renders a note score to a WAV or AIFF file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/term"

	"github.com/ik5/polysynth"
	"github.com/ik5/polysynth/audio"
	"github.com/ik5/polysynth/formats/aiff"
	"github.com/ik5/polysynth/formats/wav"
	"github.com/ik5/polysynth/score"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Encoder{})
	reg.Register("aiff", aiff.Encoder{})
	reg.Register("aif", aiff.Encoder{})
	return reg
}

// newLogger writes human readable logs to a terminal and JSON otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func expandPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return os.ExpandEnv(p), nil
}

func run(args []string, stderr io.Writer) int {
	reg := newRegistry()
	def := polysynth.DefaultConfig()

	fs := flag.NewFlagSet("polysynth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("o", "song.wav", "Output file")
	format := fs.String("format", "", "Output format: "+strings.Join(reg.Formats(), "|")+" (default: from output extension)")
	voices := fs.Int("voices", def.Voices, "Number of voices")
	rate := fs.Int("rate", def.SampleRate, "Sample rate in Hz")
	block := fs.Int("block", def.BlockFrames, "Frames rendered per score line")
	mono := fs.Bool("mono", false, "Downmix to a single channel")
	verbose := fs.Bool("v", false, "Log skipped lines and dropped notes")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: polysynth [options] score.txt\n\nRenders a note score to an audio file.\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  polysynth song.txt\n")
		fmt.Fprintf(stderr, "  polysynth -o ~/out/song.aiff -mono song.txt\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	log := newLogger(stderr, *verbose)

	cfg := polysynth.Config{
		SampleRate:  *rate,
		Voices:      *voices,
		BlockFrames: *block,
		Mono:        *mono,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	scorePath, err := expandPath(fs.Arg(0))
	if err != nil {
		log.Error("expanding score path", "path", fs.Arg(0), "err", err)
		return exitError
	}
	dst, err := expandPath(*outPath)
	if err != nil {
		log.Error("expanding output path", "path", *outPath, "err", err)
		return exitError
	}

	var enc audio.Encoder
	if *format != "" {
		e, ok := reg.Get(*format)
		if !ok {
			fmt.Fprintf(stderr, "error: %v %q\n", audio.ErrUnsupportedFormat, *format)
			return exitUsage
		}
		enc = e
	} else {
		enc, err = reg.ForPath(dst)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v for %s (use -format)\n", err, dst)
			return exitUsage
		}
	}

	stats, err := renderFile(scorePath, dst, enc, cfg, log)
	if err != nil {
		log.Error("render failed", "score", scorePath, "output", dst, "err", err)
		return exitError
	}

	if stats.Clipped() {
		log.Warn("mix exceeded full scale and was clipped", "peak", stats.Peak)
	}
	log.Info("wrote",
		"output", dst,
		"frames", stats.Frames,
		"seconds", float64(stats.Frames)/float64(cfg.SampleRate),
		"lines", stats.Lines,
		"ignored", stats.Ignored,
		"dropped", stats.Dropped,
	)

	return exitOK
}

// renderFile renders scorePath into a temporary file next to dst and
// renames it into place once the container is complete.
func renderFile(scorePath, dst string, enc audio.Encoder, cfg polysynth.Config, log *slog.Logger) (score.Stats, error) {
	in, err := os.Open(scorePath)
	if err != nil {
		return score.Stats{}, err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return score.Stats{}, fmt.Errorf("creating output: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return score.Stats{}, fmt.Errorf("creating output: %w", err)
	}

	stats, err := polysynth.RenderScore(in, tmp, enc, cfg, score.WithLogger(log))
	if err != nil {
		tmp.Close()
		return stats, err
	}
	if err := tmp.Close(); err != nil {
		return stats, fmt.Errorf("closing output: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return stats, fmt.Errorf("moving output into place: %w", err)
	}

	return stats, nil
}
