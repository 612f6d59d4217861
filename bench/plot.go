package bench

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotComplexity renders one line per K value, elapsed time against N,
// to path, the same line-per-series layout
// internal/lidar/monitor/gridplotter.go uses for its ring plots. When
// logarithmic is set the Y axis uses a log scale, mirroring
// original_source/src/helpers/plot.py's display_time_complexity(...,
// logarithmic=True).
func PlotComplexity(samples []Sample, logarithmic bool, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("bench: no samples to plot")
	}

	byK := make(map[int][]Sample)
	for _, s := range samples {
		byK[s.K] = append(byK[s.K], s)
	}
	var ks []int
	for k := range byK {
		ks = append(ks, k)
	}
	sort.Ints(ks)

	p := plot.New()
	p.Title.Text = "Kuhn-Munkres solve time vs. N"
	p.X.Label.Text = "N (wells)"
	p.Y.Label.Text = "Elapsed (ms)"
	if logarithmic {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}

	for _, k := range ks {
		series := byK[k]
		sort.Slice(series, func(i, j int) bool { return series[i].N < series[j].N })

		pts := make(plotter.XYs, len(series))
		for i, s := range series {
			pts[i].X = float64(s.N)
			pts[i].Y = float64(s.Elapsed.Nanoseconds()) / 1e6
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("bench: build line for K=%d: %w", k, err)
		}
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("K=%d", k), line)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("bench: save plot: %w", err)
	}
	return nil
}
