package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTMLReport writes an interactive line-chart view of the sweep next
// to PlotComplexity's static PNG, in the style of
// internal/lidar/monitor/echarts_handlers.go's traffic bar chart
// (charts.NewX, SetGlobalOptions, components.NewPage, Render to a file
// instead of an http.ResponseWriter).
func RenderHTMLReport(samples []Sample, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("bench: no samples to render")
	}

	byK := make(map[int][]Sample)
	var ns []int
	seenN := map[int]bool{}
	for _, s := range samples {
		byK[s.K] = append(byK[s.K], s)
		if !seenN[s.N] {
			seenN[s.N] = true
			ns = append(ns, s.N)
		}
	}
	sort.Ints(ns)

	var ks []int
	for k := range byK {
		ks = append(ks, k)
	}
	sort.Ints(ks)

	xAxis := make([]string, len(ns))
	for i, n := range ns {
		xAxis[i] = strconv.Itoa(n)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "960px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Kuhn-Munkres solve time", Subtitle: "elapsed (ms) vs. N, one series per K"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "N"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	line.SetXAxis(xAxis)

	for _, k := range ks {
		series := byK[k]
		byN := make(map[int]Sample, len(series))
		for _, s := range series {
			byN[s.N] = s
		}
		data := make([]opts.LineData, len(ns))
		for i, n := range ns {
			s, ok := byN[n]
			v := 0.0
			if ok {
				v = float64(s.Elapsed.Microseconds()) / 1000.0
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(fmt.Sprintf("K=%d", k), data)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("bench: create report file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("bench: render report: %w", err)
	}
	return nil
}
