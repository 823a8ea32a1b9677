// ABOUTME: Entry point for the wavkit-export conversion tool
// ABOUTME: Decodes any supported WAV and rewrites it as 16-bit PCM
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wavkit/wavkit-go/pkg/wav"
)

var (
	in  = flag.String("in", "", "Input WAV file")
	out = flag.String("out", "", "Output WAV file (16-bit PCM)")
)

func main() {
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: wavkit-export -in <src.wav> -out <dst.wav>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	buf, err := wav.DecodeFile(*in)
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", *in, err)
	}

	log.Printf("Decoded %s: %dHz, %d channels, %d-bit, %d frames",
		*in, buf.SampleRate, buf.Channels, buf.BitDepth, buf.Frames)

	if err := wav.EncodeFile(*out, buf); err != nil {
		log.Fatalf("Failed to encode %s: %v", *out, err)
	}

	log.Printf("Wrote %s as 16-bit PCM", *out)
}
