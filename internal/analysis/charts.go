package analysis

import (
	"sort"

	"drugdash/domain/dataset"
	domainStats "drugdash/domain/stats"

	"gonum.org/v1/gonum/stat"
)

// BuildCharts derives the three dashboard charts from the filtered records and
// their aggregation
func BuildCharts(records []dataset.Record, agg domainStats.Aggregation) domainStats.Charts {
	return domainStats.Charts{
		Recovery:    RecoveryChart(agg),
		SideEffects: SideEffectChart(records),
		AgeRecovery: AgeRecoveryChart(records),
	}
}

// RecoveryChart is a bar per drug of its mean recovery rate
func RecoveryChart(agg domainStats.Aggregation) domainStats.BarChart {
	chart := domainStats.BarChart{
		Title:  "Average Recovery Rate by Drug",
		XLabel: "Drug",
		YLabel: "Recovery Rate",
	}
	if agg.NoData || len(agg.Rows) == 0 {
		chart.NoData = true
		chart.Message = domainStats.NoDataRecoveryChart
		return chart
	}
	for _, row := range agg.Rows {
		chart.Labels = append(chart.Labels, row.Drug)
		chart.Values = append(chart.Values, row.MeanRecoveryRate)
	}
	return chart
}

// SideEffectChart counts side-effect values, largest first, ties by label
func SideEffectChart(records []dataset.Record) domainStats.PieChart {
	chart := domainStats.PieChart{Title: "Side Effect Distribution"}
	if len(records) == 0 {
		chart.NoData = true
		chart.Message = domainStats.NoDataSideEffects
		return chart
	}

	counts := make(map[string]int)
	for _, r := range records {
		counts[r.SideEffects]++
	}
	for label, n := range counts {
		chart.Slices = append(chart.Slices, domainStats.PieSlice{
			Label: label,
			Count: n,
			Share: float64(n) / float64(len(records)),
		})
	}
	sort.Slice(chart.Slices, func(i, j int) bool {
		if chart.Slices[i].Count != chart.Slices[j].Count {
			return chart.Slices[i].Count > chart.Slices[j].Count
		}
		return chart.Slices[i].Label < chart.Slices[j].Label
	})
	return chart
}

// AgeRecoveryChart plots age against recovery rate, one series per drug in
// order of first appearance
func AgeRecoveryChart(records []dataset.Record) domainStats.ScatterChart {
	chart := domainStats.ScatterChart{
		Title:  "Age vs. Recovery Rate",
		XLabel: "Age",
		YLabel: "Recovery Rate",
	}
	if len(records) == 0 {
		chart.NoData = true
		chart.Message = domainStats.NoDataAgeRecovery
		return chart
	}

	index := make(map[string]int)
	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = float64(r.Age)
		ys[i] = r.RecoveryRate

		pos, ok := index[r.Drug]
		if !ok {
			pos = len(chart.Series)
			index[r.Drug] = pos
			chart.Series = append(chart.Series, domainStats.ScatterSeries{Name: r.Drug})
		}
		chart.Series[pos].Points = append(chart.Series[pos].Points, domainStats.Point{X: xs[i], Y: ys[i]})
	}

	// Pearson r is undefined without spread on both axes
	if len(records) >= 2 && stat.Variance(xs, nil) > 0 && stat.Variance(ys, nil) > 0 {
		chart.Correlation = stat.Correlation(xs, ys, nil)
		chart.HasCorrelation = true
	}
	return chart
}
