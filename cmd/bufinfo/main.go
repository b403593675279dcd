// Command bufinfo prints diagnostics for the fixed-point buffer engine.
//
// Without arguments it reports the kernel variant compiled into the binary
// and the SIMD features of the current CPU. With WAV file arguments it
// additionally decodes each file to 16-bit PCM and prints Q1.15 buffer
// statistics computed by the engine.
//
// Usage:
//
//	bufinfo [flags] [file.wav ...]
//
// Examples:
//
//	bufinfo
//	bufinfo take1.wav take2.wav
//	bufinfo -peaks take1.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-fixpoint/dsp/q15"
	"github.com/cwbudde/algo-fixpoint/internal/cpu"
	"github.com/cwbudde/algo-fixpoint/internal/fixvec"
)

var showPeaks = flag.Bool("peaks", false, "also print min/max sample values and positions")

func main() {
	flag.Parse()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	printBuildInfo(w)

	exitCode := 0
	for _, path := range flag.Args() {
		if err := printFileStats(w, path); err != nil {
			fmt.Fprintf(os.Stderr, "bufinfo: %v\n", err)
			exitCode = 1
		}
	}
	w.Flush()
	os.Exit(exitCode)
}

func printBuildInfo(w *tabwriter.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "kernel variant\t%s\n", fixvec.Implementation())
	fmt.Fprintf(w, "architecture\t%s\n", f.Architecture)
	fmt.Fprintf(w, "sse2\t%v\n", f.HasSSE2)
	fmt.Fprintf(w, "avx2\t%v\n", f.HasAVX2)
	fmt.Fprintf(w, "neon\t%v\n", f.HasNEON)
}

func printFileStats(w *tabwriter.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return fmt.Errorf("%s: not a valid WAV file", path)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	buf := q15.FromIntBuffer(pcm)
	if buf.Len() == 0 {
		return fmt.Errorf("%s: no samples", path)
	}

	fmt.Fprintf(w, "\nfile\t%s\n", path)
	fmt.Fprintf(w, "channels\t%d\n", pcm.Format.NumChannels)
	fmt.Fprintf(w, "sample rate\t%d\n", pcm.Format.SampleRate)
	fmt.Fprintf(w, "samples\t%d\n", buf.Len())
	fmt.Fprintf(w, "mean\t%d\n", buf.Mean())
	fmt.Fprintf(w, "rms\t%d\n", buf.Rms())
	fmt.Fprintf(w, "power\t%d\n", buf.Power())
	fmt.Fprintf(w, "std dev\t%d\n", buf.StandardDeviation())

	if *showPeaks {
		minV, minI := buf.Min()
		maxV, maxI := buf.Max()
		fmt.Fprintf(w, "min\t%d (index %d)\n", minV, minI)
		fmt.Fprintf(w, "max\t%d (index %d)\n", maxV, maxI)
	}
	return nil
}
