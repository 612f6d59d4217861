// Command wells is the CLI entry point for the well/house assignment
// solver: it dispatches between reading a pre-built input file, generating
// a random one, and sweeping a time-complexity benchmark, mirroring the
// mode-flag dispatch in original_source/main.py's __main__ block.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/cehbz/hungarianwells/bench"
	"github.com/cehbz/hungarianwells/geninput"
	"github.com/cehbz/hungarianwells/geometry"
	"github.com/cehbz/hungarianwells/ioformat"
	"github.com/cehbz/hungarianwells/wells"
)

func main() {
	mode := flag.String("mode", "read", "Operation mode: 'read' (solve an existing input file), 'generate' (create a random instance and solve it), or 'benchmark' (sweep N x K and render timing charts)")
	n := flag.Int("n", 3, "Number of wells (generate and benchmark modes)")
	k := flag.Int("k", 2, "Houses per well (generate and benchmark modes)")
	input := flag.String("input", "input.txt", "Input file path (read and generate modes)")
	output := flag.String("output", "output.txt", "Output file path (read and generate modes)")
	seedA := flag.Uint64("seed-a", 1, "First half of the generator seed (generate mode)")
	seedB := flag.Uint64("seed-b", 2, "Second half of the generator seed (generate mode)")
	plotPath := flag.String("plot", "bench.png", "PNG path for the static complexity plot (benchmark mode)")
	reportPath := flag.String("report", "bench.html", "HTML path for the interactive complexity report (benchmark mode)")
	logScale := flag.Bool("log-scale", false, "Render the benchmark plot's Y axis on a log scale (benchmark mode)")
	flag.Parse()

	switch *mode {
	case "read":
		runRead(*input, *output)
	case "generate":
		runGenerate(*n, *k, *input, *output, *seedA, *seedB)
	case "benchmark":
		runBenchmark(*n, *k, *plotPath, *reportPath, *logScale)
	default:
		log.Fatalf("wells: unknown mode %q (want read, generate, or benchmark)", *mode)
	}
}

func runRead(inputPath, outputPath string) {
	in, err := ioformat.ReadInput(inputPath)
	if err != nil {
		log.Fatalf("wells: read input: %v", err)
	}
	sol := solveOrExit(in.N, in.K, in.Wells, in.Houses)
	if err := ioformat.WriteOutput(outputPath, sol); err != nil {
		log.Fatalf("wells: write output: %v", err)
	}
	log.Printf("wells: solved %d wells x %d houses, total distance %.2f, wrote %s", in.N, in.K, sol.TotalDist, outputPath)
}

func runGenerate(n, k int, inputPath, outputPath string, seedA, seedB uint64) {
	if n < 1 || k < 1 {
		log.Fatalf("wells: generate requires n >= 1 and k >= 1, got n=%d k=%d", n, k)
	}
	rng := rand.New(rand.NewPCG(seedA, seedB))
	in := geninput.Generate(n, k, rng)
	if err := ioformat.WriteInput(inputPath, in); err != nil {
		log.Fatalf("wells: write generated input: %v", err)
	}
	sol := solveOrExit(in.N, in.K, in.Wells, in.Houses)
	if err := ioformat.WriteOutput(outputPath, sol); err != nil {
		log.Fatalf("wells: write output: %v", err)
	}
	log.Printf("wells: generated and solved %d wells x %d houses, total distance %.2f, wrote %s and %s", n, k, sol.TotalDist, inputPath, outputPath)
}

func runBenchmark(maxN, maxK int, plotPath, reportPath string, logScale bool) {
	samples, err := bench.Sweep(maxN, maxK)
	if err != nil {
		log.Fatalf("wells: benchmark sweep: %v", err)
	}
	if err := bench.PlotComplexity(samples, logScale, plotPath); err != nil {
		log.Fatalf("wells: plot complexity: %v", err)
	}
	if err := bench.RenderHTMLReport(samples, reportPath); err != nil {
		log.Fatalf("wells: render report: %v", err)
	}
	log.Printf("wells: swept %d samples up to N=%d K=%d, wrote %s and %s", len(samples), maxN, maxK, plotPath, reportPath)
}

func solveOrExit(n, k int, wellPts, housePts []geometry.Point) wells.Solution {
	sol, err := wells.Solve(wells.Problem{N: n, K: k, Wells: wellPts, Houses: housePts})
	if err != nil {
		log.Fatalf("wells: solve: %v", err)
	}
	return sol
}
