package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-s16/dsp/fixed"
	"github.com/cwbudde/algo-s16/internal/cpu"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"
)

func printFeatures(w io.Writer, active string) {
	f := cpu.DetectFeatures()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Architecture", f.Architecture},
		{"Byte order", fixed.NativeOrder.String()},
		{"Packed 16x2", yesNo(f.HasPacked16x2)},
		{"SSE2", yesNo(f.HasSSE2)},
		{"NEON", yesNo(f.HasNEON)},
		{"Forced generic", yesNo(f.ForceGeneric)},
		{"Active kernels", active},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printKernels(w io.Writer) {
	features := cpu.DetectFeatures()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tLevel\tPriority\tUsable\n------\t-----\t--------\t------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, e := range registry.Global.ListEntries() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, yesNo(cpu.Supports(features, e.SIMDLevel))); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printSelfCheck reports the mismatches and returns true when there are none.
func printSelfCheck(w io.Writer, mismatches []mismatch, numSizes int) bool {
	if len(mismatches) == 0 {
		_, _ = fmt.Fprintf(w, "Self-check: packed matches generic for %d block sizes under %s and %s order\n",
			numSizes, fixed.LittleEndian, fixed.BigEndian)
		return true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Op\tOrder\tBlock\tIndex\tGeneric\tPacked\n")
	for _, m := range mismatches {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", m.op, m.order, m.blockSize, m.index, m.want, m.got)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	_, _ = fmt.Fprintf(w, "Self-check FAILED: %d mismatches\n", len(mismatches))
	return false
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
