package dataset

import (
	"log"

	domain "drugdash/domain/dataset"
)

// Clean returns a new dataset holding only the records with no missing field,
// in their original order. Filter options are recomputed from the survivors.
func Clean(ds *domain.Dataset) *domain.Dataset {
	if ds == nil {
		return domain.NewDataset(nil)
	}

	kept := make([]domain.Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		if r.Complete() {
			kept = append(kept, r)
		}
	}

	if dropped := len(ds.Records) - len(kept); dropped > 0 {
		log.Printf("[Cleaning] Dropped %d of %d records with missing fields", dropped, len(ds.Records))
	}
	return domain.NewDataset(kept)
}
