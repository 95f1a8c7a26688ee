package analysis

import (
	"fmt"

	"drugdash/domain/dataset"
	domainStats "drugdash/domain/stats"

	"github.com/montanaflynn/stats"
)

// Summarize computes the summary panel over records. An empty input yields
// the no-data sentinel rather than means over zero records.
func Summarize(records []dataset.Record) domainStats.Summary {
	if len(records) == 0 {
		return domainStats.Summary{NoData: true, Message: domainStats.NoDataSummary}
	}

	recovery := make(stats.Float64Data, len(records))
	duration := make(stats.Float64Data, len(records))
	dosage := make(stats.Float64Data, len(records))
	for i, r := range records {
		recovery[i] = r.RecoveryRate
		duration[i] = r.Duration
		dosage[i] = r.Dosage
	}

	s := domainStats.Summary{Count: len(records)}
	s.MeanRecoveryRate, _ = recovery.Mean()
	s.MeanDuration, _ = duration.Mean()
	s.MeanDosage, _ = dosage.Mean()

	s.RecoveryRateText = fmt.Sprintf("%.2f", s.MeanRecoveryRate)
	s.DurationText = fmt.Sprintf("%.1f Days", s.MeanDuration)
	s.DosageText = fmt.Sprintf("%.1f mg", s.MeanDosage)
	s.CountText = fmt.Sprintf("%d", s.Count)
	return s
}
