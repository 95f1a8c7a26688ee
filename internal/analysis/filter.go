package analysis

import (
	"drugdash/domain/dataset"
)

// FilterRecords evaluates criteria against every record of ds in memory and
// returns the matches in dataset order. An empty result is not an error.
func FilterRecords(ds *dataset.Dataset, criteria dataset.FilterCriteria) []dataset.Record {
	if ds == nil {
		return []dataset.Record{}
	}
	out := make([]dataset.Record, 0)
	for _, r := range ds.Records {
		if criteria.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// SameMembers reports whether a and b hold the same patient identifiers,
// ignoring order
func SameMembers(a, b []dataset.Record) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, r := range a {
		counts[r.PatientID]++
	}
	for _, r := range b {
		counts[r.PatientID]--
		if counts[r.PatientID] < 0 {
			return false
		}
	}
	return true
}
