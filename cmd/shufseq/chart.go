package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/yyyoichi/shufseq"
)

// writeHistogram renders the recurrence distance histogram as a bar chart.
// Bars are labeled with the lower bound of their bin.
func writeHistogram(path, name string, s shufseq.Summary, dividers, counts []float64) error {
	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = strconv.FormatFloat(dividers[i], 'f', 0, 64)
		data[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s recurrence distances (N=%d)", name, s.N),
			Subtitle: fmt.Sprintf("samples=%d min=%.2f max=%.2f avg=%.2f std=%.2f",
				s.Count, s.MinN(), s.MaxN(), s.AvgN(), s.StdN()),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "distance"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("distance", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}

// writeHeatmap renders one destination frequency map per interlace width.
func writeHeatmap(path string, r *shufseq.VerifyResult) error {
	n := int(r.Size)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	page := components.NewPage()
	for _, d := range r.Widths() {
		freq := r.Frequencies(d)
		var data []opts.HeatMapData
		var peak float64
		for was := range n {
			for is := range n {
				v := freq.At(was, is)
				peak = max(peak, v)
				data = append(data, opts.HeatMapData{Value: [3]any{is, was, v}})
			}
		}

		heatmap := charts.NewHeatMap()
		heatmap.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("Interlace width %d", d),
				Subtitle: fmt.Sprintf("destination frequency over %d passes", r.Count[d]),
			}),
			charts.WithXAxisOpts(opts.XAxis{
				Name:      "is",
				Type:      "category",
				Data:      labels,
				SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Name:      "was",
				Type:      "category",
				Data:      labels,
				SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			}),
			charts.WithVisualMapOpts(opts.VisualMap{
				Calculable: opts.Bool(true),
				Min:        0,
				Max:        float32(peak),
				InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#74add1", "#fee090", "#f46d43", "#a50026"}},
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)
		heatmap.AddSeries("frequency", data)
		page.AddCharts(heatmap)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
