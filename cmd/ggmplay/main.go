// ggmplay - a small command-line host for the ggm synth engine.
//
// It builds a single root patch (a metronome or a polyphonic voice
// bank), drives it block-by-block against the audio backend chosen at
// build time (oto-backed by default, a no-op under the "headless"
// build tag), and plays until interrupted or for a duration given on
// the command line.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/sirmanlypowers/ggm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ggmplay:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		patch     string
		voiceKind string
		duration  time.Duration
		logLevel  string
	)

	flags := pflag.NewFlagSet("ggmplay", pflag.ContinueOnError)
	flags.StringVar(&patch, "patch", "metro", `root patch to run: "metro" or "poly"`)
	flags.StringVar(&voiceKind, "voice", ggm.PolyVoiceGoom, `poly patch voice kind: "goom", "sine" or "ks"`)
	flags.DurationVar(&duration, "duration", 0, "stop after this long (0 = run until interrupted)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	ggm.SetDefaultLogger(ggm.NewCharmLogger(parseLogLevel(logLevel)))

	synth := ggm.NewSynth(nil)

	var (
		root *ggm.Module
		err  error
	)
	switch patch {
	case "metro":
		root, err = ggm.NewModule(synth, nil, "root/metro", -1)
	case "poly":
		root, err = ggm.NewModule(synth, nil, "root/poly", -1, voiceKind)
	default:
		return fmt.Errorf("unknown patch %q", patch)
	}
	if err != nil {
		return fmt.Errorf("build patch: %w", err)
	}

	if err := synth.SetRoot(root); err != nil {
		return fmt.Errorf("set root: %w", err)
	}

	backend, err := newAudioBackend(ggm.SampleRate)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}

	audioOut, audioOutIdx := stereoOutBufs(synth)

	pull := func(frames int) []float32 {
		out := make([]float32, 0, frames*2)
		for len(out) < frames*2 {
			synth.Loop()
			left, right := audioOut[audioOutIdx[0]], audioOut[audioOutIdx[1]]
			for i := 0; i < ggm.BlockSize && len(out) < frames*2; i++ {
				out = append(out, left[i], right[i])
			}
		}
		return out
	}

	if err := backend.Start(pull); err != nil {
		return fmt.Errorf("start audio: %w", err)
	}
	defer backend.Stop()

	if duration > 0 {
		time.Sleep(duration)
		return nil
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}

// stereoOutBufs finds the index, within the synth's flat buffer pool,
// of the root patch's two stereo output buffers. The pool lays out
// input buffers first, then output buffers, in port-table order; a
// root patch's only audio inputs are none (metro, poly), so the first
// two buffers are its "out0"/"out1" outputs.
func stereoOutBufs(s *ggm.Synth) ([][]float32, [2]int) {
	return s.Bufs, [2]int{0, 1}
}

func parseLogLevel(s string) charmlog.Level {
	switch s {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
