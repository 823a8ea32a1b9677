// ABOUTME: Entry point for the Wavkit sample player
// ABOUTME: Parses CLI flags, loads the file, and starts output plus TUI
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/wavkit/wavkit-go/internal/output"
	"github.com/wavkit/wavkit-go/internal/ui"
	"github.com/wavkit/wavkit-go/internal/version"
	"github.com/wavkit/wavkit-go/pkg/sampler"
)

var (
	file        = flag.String("file", "", "WAV file to play")
	speed       = flag.Float64("speed", 1.0, "Tempo multiplier (0.01-100)")
	pitch       = flag.Float64("pitch", 1.0, "Pitch multiplier (0.01-100)")
	volume      = flag.Float64("volume", 1.0, "Output gain (0-10)")
	reverse     = flag.Bool("reverse", false, "Play backwards")
	loopMode    = flag.String("loop", "off", "Loop mode: off, forward, pingpong")
	interp      = flag.String("interp", "cubic", "Interpolation: none, linear, cubic")
	rate        = flag.Int("rate", 48000, "Output sample rate in Hz")
	logFile     = flag.String("log-file", "wavkit.log", "Log file path")
	noTUI       = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.Product, version.Version)
		return
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: wavkit -file <path.wav> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if *noTUI {
		// Streaming logs mode: log to both stdout and file
		multiWriter := io.MultiWriter(os.Stdout, f)
		log.SetOutput(multiWriter)
	} else {
		// TUI mode: log only to file
		log.SetOutput(f)
	}

	log.Printf("Starting %s %s", version.Product, version.Version)

	player := sampler.New()
	if err := player.LoadFile(*file); err != nil {
		log.Fatalf("Failed to load %s: %v", *file, err)
	}
	log.Printf("Loaded %s: %dHz, %d channels, %d-bit, %.2fs",
		*file, player.SourceSampleRate(), player.Channels(),
		player.BitDepth(), player.Duration())

	player.SetSpeed(*speed)
	player.SetPitch(*pitch)
	player.SetVolume(*volume)
	player.SetReverse(*reverse)

	mode, err := parseLoopMode(*loopMode)
	if err != nil {
		log.Fatalf("Invalid -loop: %v", err)
	}
	player.SetLoopMode(mode)

	quality, err := parseQuality(*interp)
	if err != nil {
		log.Fatalf("Invalid -interp: %v", err)
	}
	player.SetInterpolationQuality(quality)

	out, err := output.New(player, *rate)
	if err != nil {
		log.Fatalf("Failed to open audio output: %v", err)
	}
	defer func() { _ = out.Close() }()

	out.Start()
	player.Play()
	log.Printf("Playback started at %dHz output", *rate)

	if *noTUI {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Printf("Shutdown signal received")
	} else {
		if err := ui.Run(player); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
	}

	player.Stop()
	log.Printf("Player stopped")
}

// parseLoopMode maps the -loop flag to a loop mode.
func parseLoopMode(s string) (sampler.LoopMode, error) {
	switch strings.ToLower(s) {
	case "off":
		return sampler.LoopOff, nil
	case "forward":
		return sampler.LoopForward, nil
	case "pingpong":
		return sampler.LoopPingPong, nil
	default:
		return sampler.LoopOff, fmt.Errorf("unknown loop mode %q", s)
	}
}

// parseQuality maps the -interp flag to an interpolation quality.
func parseQuality(s string) (sampler.Quality, error) {
	switch strings.ToLower(s) {
	case "none":
		return sampler.QualityNone, nil
	case "linear":
		return sampler.QualityLinear, nil
	case "cubic":
		return sampler.QualityCubic, nil
	default:
		return sampler.QualityCubic, fmt.Errorf("unknown interpolation %q", s)
	}
}
