package sorter

import (
	"github.com/lothartj/desksort/internal/model"
)

// Sorter defines the interface for the sort engine.
type Sorter interface {
	// ScanAndSort runs one sorting pass over sourceDir using mapping and
	// returns the accumulated result once every entry has been processed.
	ScanAndSort(sourceDir string, mapping model.Mapping) (*model.SortResult, error)
}
