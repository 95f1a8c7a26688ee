package analysis

import (
	"sort"

	"drugdash/domain/dataset"
	domainStats "drugdash/domain/stats"

	"github.com/montanaflynn/stats"
)

// Aggregate groups records by drug and computes the mean recovery rate of each
// group. Rows are ordered by drug name. The effective set holds every drug
// whose mean is exactly equal to the largest mean; no tolerance is applied.
func Aggregate(records []dataset.Record) domainStats.Aggregation {
	if len(records) == 0 {
		return domainStats.Aggregation{
			Rows:      []domainStats.AggregateRow{},
			Effective: []string{},
			NoData:    true,
			Message:   domainStats.NoDataEffectiveDrugs,
		}
	}

	groups := make(map[string]stats.Float64Data)
	for _, r := range records {
		groups[r.Drug] = append(groups[r.Drug], r.RecoveryRate)
	}

	drugs := make([]string, 0, len(groups))
	for drug := range groups {
		drugs = append(drugs, drug)
	}
	sort.Strings(drugs)

	agg := domainStats.Aggregation{Rows: make([]domainStats.AggregateRow, 0, len(drugs))}
	for i, drug := range drugs {
		// groups are never empty, so Mean cannot fail here
		mean, _ := groups[drug].Mean()
		agg.Rows = append(agg.Rows, domainStats.AggregateRow{
			Drug:             drug,
			MeanRecoveryRate: mean,
			Count:            len(groups[drug]),
		})
		if i == 0 || mean > agg.MaxMean {
			agg.MaxMean = mean
		}
	}

	agg.Effective = make([]string, 0, 1)
	for _, row := range agg.Rows {
		if row.MeanRecoveryRate == agg.MaxMean {
			agg.Effective = append(agg.Effective, row.Drug)
		}
	}
	return agg
}
