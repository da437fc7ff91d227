// Command wininfo prints spectral properties of Kaiser windows.
//
// Usage:
//
//	wininfo [flags] [beta ...]
//
// Without arguments it prints a row for a ladder of common beta values.
//
// Examples:
//
//	wininfo 8.6
//	wininfo -size 4096 2 5 8.6 12
//	wininfo -sidelobe 60 -sidelobe 90
//	wininfo -periodic -fft 65536 6
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-special/dsp/window"
)

var defaultBetas = []float64{0, 2, 4, 6, 8.6, 10, 14}

type row struct {
	label string
	beta  float64
}

// sidelobeTargets collects repeated -sidelobe flags.
type sidelobeTargets []float64

func (s *sidelobeTargets) String() string { return fmt.Sprint([]float64(*s)) }

func (s *sidelobeTargets) Set(v string) error {
	dB, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*s = append(*s, dB)
	return nil
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	fftSize := flag.Int("fft", 0, "FFT length for the analysis (power of two, 0 = automatic)")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	var targets sidelobeTargets
	flag.Var(&targets, "sidelobe", "design beta for this sidelobe level in dB (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [beta ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of Kaiser windows.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a ladder of common beta values.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo 8.6\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 4096 2 5 8.6 12\n")
		fmt.Fprintf(os.Stderr, "  wininfo -sidelobe 60 -sidelobe 90\n")
	}
	flag.Parse()

	rows, err := resolveRows(flag.Args(), targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	if err := printAnalysis(rows, *size, *fftSize, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveRows(args []string, targets []float64) ([]row, error) {
	var rows []row
	for _, a := range args {
		beta, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid beta %q: %w", a, err)
		}
		rows = append(rows, row{label: fmt.Sprintf("beta=%.2f", beta), beta: beta})
	}

	for _, dB := range targets {
		beta, err := window.BetaForSidelobe(dB)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{label: fmt.Sprintf("%.0f dB (beta=%.2f)", dB, beta), beta: beta})
	}

	if len(rows) == 0 {
		for _, beta := range defaultBetas {
			rows = append(rows, row{label: fmt.Sprintf("beta=%.2f", beta), beta: beta})
		}
	}
	return rows, nil
}

func printAnalysis(rows []row, size, fftSize int, opts []window.Option) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range rows {
		coeffs, err := window.Kaiser(size, r.beta, opts...)
		if err != nil {
			return err
		}

		a, err := window.Analyze(coeffs, fftSize)
		if err != nil {
			return fmt.Errorf("%s: %w", r.label, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			r.label,
			size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
