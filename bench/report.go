package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/goccy/go-json"

	groebner "github.com/jonathanmweiss/go-groebner"
)

func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func ReadJSON(rd io.Reader) (*Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, err
	}

	return &r, nil
}

func newSummaryChart(r *Report) *charts.Bar {
	names := make([]string, len(r.Summary))
	means := make([]opts.BarData, len(r.Summary))
	medians := make([]opts.BarData, len(r.Summary))

	for i, s := range r.Summary {
		names[i] = s.Strategy
		means[i] = opts.BarData{Value: s.Mean}
		medians[i] = opts.BarData{Value: s.Median}
	}

	cfg := r.Config
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Steps per strategy",
			Subtitle: fmt.Sprintf("%d ideals, %d generators, nvar=%d, max degree %d, %s sampling, p=%d",
				cfg.Ideals, cfg.Generators, cfg.NVar, cfg.MaxDegree, cfg.Mode, cfg.Prime),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Buchberger strategies", Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries("mean", means).
		AddSeries("median", medians)

	return bar
}

func newTrialChart(r *Report) *charts.Line {
	xs := make([]string, len(r.Trials))
	for i, t := range r.Trials {
		xs[i] = strconv.Itoa(t.Index)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Steps per ideal"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xs)

	for _, s := range groebner.Strategies {
		data := make([]opts.LineData, len(r.Trials))
		for i, t := range r.Trials {
			data[i] = opts.LineData{Value: t.Steps[string(s)]}
		}

		line.AddSeries(string(s), data)
	}

	return line
}

// RenderChart writes an HTML page comparing the strategies of a report.
func RenderChart(w io.Writer, r *Report) error {
	page := components.NewPage()
	page.AddCharts(newSummaryChart(r), newTrialChart(r))

	return page.Render(w)
}
