package stats

// Sentinel messages shown in place of results computed over an empty filter
const (
	NoDataEffectiveDrugs = "No data available for the selected filters."
	NoDataSummary        = "No data to show summary statistics."
	NoDataRecoveryChart  = "No data to show recovery rate graph."
	NoDataSideEffects    = "No data to show side effect graph."
	NoDataAgeRecovery    = "No data to show Age vs Recovery graph."
)

// AggregateRow is the mean recovery rate of one drug over the filtered records
type AggregateRow struct {
	Drug             string  `json:"drug"`
	MeanRecoveryRate float64 `json:"mean_recovery_rate"`
	Count            int     `json:"count"`
}

// Aggregation groups the filtered records by drug. Effective holds every drug
// whose mean equals the maximum mean, ties included.
type Aggregation struct {
	Rows      []AggregateRow `json:"rows"`
	Effective []string       `json:"effective_drugs"`
	MaxMean   float64        `json:"max_mean"`
	NoData    bool           `json:"no_data"`
	Message   string         `json:"message"`
}

// Summary holds scalar descriptive statistics over the filtered records, both
// raw and formatted for display.
type Summary struct {
	MeanRecoveryRate float64 `json:"mean_recovery_rate"`
	MeanDuration     float64 `json:"mean_duration_days"`
	MeanDosage       float64 `json:"mean_dosage_mg"`
	Count            int     `json:"count"`

	RecoveryRateText string `json:"recovery_rate_text"`
	DurationText     string `json:"duration_text"`
	DosageText       string `json:"dosage_text"`
	CountText        string `json:"count_text"`

	NoData  bool   `json:"no_data"`
	Message string `json:"message,omitempty"`
}

// Metric is one labelled value of the summary panel
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Metrics lists the summary in display order
func (s Summary) Metrics() []Metric {
	if s.NoData {
		return nil
	}
	return []Metric{
		{Label: "Average Recovery Rate", Value: s.RecoveryRateText},
		{Label: "Average Treatment Duration", Value: s.DurationText},
		{Label: "Average Dosage", Value: s.DosageText},
		{Label: "Total Patients", Value: s.CountText},
	}
}
