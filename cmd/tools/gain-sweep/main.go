// gain-sweep enumerates candidate gain specs over threshold and width
// ranges, evaluates each against recorded metric samples, and prints one
// CSV row per candidate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aperture-field/capture.quality/internal/capture/l3gain"
	"github.com/aperture-field/capture.quality/internal/capture/sweep"
)

func main() {
	thresholds := flag.String("thresholds", "0.2:0.8:0.05", "Threshold range min:max:step")
	widths := flag.String("widths", "0.1:0.5:0.1", "Transition width range min:max:step")
	floor := flag.Float64("floor", 0, "Gain floor for every candidate")
	favorable := flag.String("favorable", "low", "Favorable direction (high or low)")
	samplesPath := flag.String("samples", "-", "File with one metric sample per line, or - for stdin")
	workers := flag.Int("workers", 4, "Worker pool size")
	flag.Parse()

	thrRange, err := sweep.ParseRangeSpec(*thresholds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gain-sweep: %v\n", err)
		os.Exit(1)
	}
	widthRange, err := sweep.ParseRangeSpec(*widths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gain-sweep: %v\n", err)
		os.Exit(1)
	}

	samples, err := readSamples(*samplesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gain-sweep: %v\n", err)
		os.Exit(1)
	}

	points, err := sweep.Run(sweep.Request{
		Base: l3gain.Spec{
			Floor:     *floor,
			Favorable: l3gain.Favorable(*favorable),
		},
		Thresholds: thrRange,
		Widths:     widthRange,
		Samples:    samples,
		Workers:    *workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gain-sweep: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("threshold,transition_width,mean_gain,stddev_gain,p10,p50,p90,fast_max_error")
	for _, p := range points {
		fmt.Printf("%g,%g,%g,%g,%g,%g,%g,%g\n",
			p.Threshold, p.TransitionWidth, p.MeanGain, p.StdDevGain,
			p.P10, p.P50, p.P90, p.FastMaxError)
	}
}

func readSamples(path string) ([]float64, error) {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var samples []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %w", line, err)
		}
		samples = append(samples, v)
	}
	return samples, scanner.Err()
}
