package stats

// BarChart plots mean recovery rate per drug
type BarChart struct {
	Title   string    `json:"title"`
	XLabel  string    `json:"x_label"`
	YLabel  string    `json:"y_label"`
	Labels  []string  `json:"labels"`
	Values  []float64 `json:"values"`
	NoData  bool      `json:"no_data"`
	Message string    `json:"message,omitempty"`
}

// PieSlice is one category of a pie chart
type PieSlice struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// PieChart shows the side-effect distribution
type PieChart struct {
	Title   string     `json:"title"`
	Slices  []PieSlice `json:"slices"`
	NoData  bool       `json:"no_data"`
	Message string     `json:"message,omitempty"`
}

// Point is one (x, y) observation
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterSeries is the set of points for one drug
type ScatterSeries struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// ScatterChart plots age against recovery rate coloured by drug. Correlation
// is the Pearson coefficient over all points and is only set when HasCorrelation.
type ScatterChart struct {
	Title          string          `json:"title"`
	XLabel         string          `json:"x_label"`
	YLabel         string          `json:"y_label"`
	Series         []ScatterSeries `json:"series"`
	Correlation    float64         `json:"correlation"`
	HasCorrelation bool            `json:"has_correlation"`
	NoData         bool            `json:"no_data"`
	Message        string          `json:"message,omitempty"`
}

// Charts bundles the three dashboard visualisations
type Charts struct {
	Recovery    BarChart     `json:"recovery"`
	SideEffects PieChart     `json:"side_effects"`
	AgeRecovery ScatterChart `json:"age_recovery"`
}
