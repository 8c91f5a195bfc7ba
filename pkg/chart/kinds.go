package chart

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dtnitsch/web-wordviz/models"
	"github.com/dtnitsch/web-wordviz/pkg/frequency"
)

func (r *Renderer) wordCloud(ranked []models.WordCount) *charts.WordCloud {
	data := make([]opts.WordCloudData, 0, len(ranked))
	for _, wc := range ranked {
		data = append(data, opts.WordCloudData{Name: wc.Word, Value: wc.Count})
	}

	c := charts.NewWordCloud()
	c.SetGlobalOptions(r.global("Word Cloud")...)
	c.AddSeries(seriesName, data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			Shape:     "circle",
			SizeRange: []float32{20, 100},
		}),
	)
	return c
}

func (r *Renderer) bar(ranked []models.WordCount) *charts.Bar {
	data := make([]opts.BarData, 0, len(ranked))
	for _, wc := range ranked {
		data = append(data, opts.BarData{Name: wc.Word, Value: wc.Count})
	}

	c := charts.NewBar()
	c.SetGlobalOptions(r.global("Top Word Frequencies",
		// vertical labels so long words don't overlap
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: -90, Interval: "0"},
		}),
	)...)
	c.SetXAxis(words(ranked)).AddSeries(seriesName, data)
	return c
}

func (r *Renderer) line(ranked []models.WordCount) *charts.Line {
	data := make([]opts.LineData, 0, len(ranked))
	for _, wc := range ranked {
		data = append(data, opts.LineData{Name: wc.Word, Value: wc.Count})
	}

	c := charts.NewLine()
	c.SetGlobalOptions(r.global("Top Word Frequency Trend")...)
	c.SetXAxis(words(ranked)).AddSeries(seriesName, data)
	return c
}

func (r *Renderer) pie(ranked []models.WordCount) *charts.Pie {
	data := make([]opts.PieData, 0, len(ranked))
	for _, wc := range ranked {
		data = append(data, opts.PieData{Name: wc.Word, Value: wc.Count})
	}

	c := charts.NewPie()
	c.SetGlobalOptions(r.global("Top Word Distribution",
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Left:   "80%",
			Orient: "vertical",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger:   "item",
			Formatter: "{a} <br/>{b}: {c} ({d}%)",
		}),
	)...)
	c.AddSeries(seriesName, data,
		charts.WithPieChartOpts(opts.PieChart{
			Radius:   []string{"40%", "75%"},
			RoseType: "radius",
		}),
		charts.WithLabelOpts(opts.Label{
			Formatter: "{b}: {c}",
			Position:  "outside",
		}),
	)
	return c
}

func (r *Renderer) radar(ranked []models.WordCount) *charts.Radar {
	// every axis shares the global maximum so the polygon is comparable
	maxCount := float32(frequency.MaxCount(ranked))
	indicators := make([]*opts.Indicator, 0, len(ranked))
	values := make([]int, 0, len(ranked))
	for _, wc := range ranked {
		indicators = append(indicators, &opts.Indicator{Name: wc.Word, Max: maxCount})
		values = append(values, wc.Count)
	}

	c := charts.NewRadar()
	c.SetGlobalOptions(r.global("Top Word Frequency Radar",
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
	)...)
	c.AddSeries(seriesName, []opts.RadarData{{Name: seriesName, Value: values}},
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.1)}),
	)
	return c
}

func (r *Renderer) scatter(ranked []models.WordCount) *charts.Scatter {
	xs := make([]int, len(ranked))
	data := make([]opts.ScatterData, 0, len(ranked))
	for i, wc := range ranked {
		xs[i] = i
		data = append(data, opts.ScatterData{
			Name:       wc.Word,
			Value:      wc.Count,
			Symbol:     "arrow",
			SymbolSize: 20,
		})
	}

	c := charts.NewScatter()
	c.SetGlobalOptions(r.global("Top Word Frequency Scatter")...)
	c.SetXAxis(xs).AddSeries(seriesName, data)
	return c
}

func (r *Renderer) funnel(ranked []models.WordCount) *charts.Funnel {
	stages := make([]models.WordCount, len(ranked))
	copy(stages, ranked)
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].Count > stages[j].Count
	})

	data := make([]opts.FunnelData, 0, len(stages))
	for _, wc := range stages {
		data = append(data, opts.FunnelData{Name: wc.Word, Value: wc.Count})
	}

	c := charts.NewFunnel()
	c.SetGlobalOptions(r.global("Top Word Frequency Funnel",
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)...)
	// the white stage border stands in for ECharts' funnel gap
	c.AddSeries("Words", data,
		charts.WithLabelOpts(opts.Label{
			Position:  "inside",
			Formatter: "{b}: {c}",
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			BorderColor: "#fff",
			BorderWidth: 1,
		}),
	)
	return c
}
