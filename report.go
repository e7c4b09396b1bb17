package xframe

import (
	"github.com/hashicorp/go-multierror"
)

// ConversionReport aggregates cell and row-level issues encountered while
// converting raw data at scale, so that partial visibility is available at
// the Frame level after processing completes, rather than only a first error.
type ConversionReport struct {
	RowsConverted  int            // rows successfully converted (possibly with nulled cells)
	RowsDropped    int            // rows dropped due to schema length mismatch
	CellsNulled    int            // cells substituted with nil under the lenient policy
	NulledByColumn map[string]int // per-column nulled cell counts
	errs           *multierror.Error
}

// CreateConversionReport produces an empty ConversionReport
func CreateConversionReport() *ConversionReport {
	return &ConversionReport{NulledByColumn: make(map[string]int)}
}

// Record notes a contained cell or row-level issue within this report
func (r *ConversionReport) Record(err error) {
	r.errs = multierror.Append(r.errs, err)
}

// Err returns the aggregated issues within this report, or nil if there were none
func (r *ConversionReport) Err() error {
	if r.errs == nil || len(r.errs.Errors) == 0 {
		return nil
	}
	return r.errs
}

// Merge folds another ConversionReport into this one. Useful for combining
// per-partition reports after parallel processing.
func (r *ConversionReport) Merge(other *ConversionReport) {
	if other == nil {
		return
	}
	r.RowsConverted += other.RowsConverted
	r.RowsDropped += other.RowsDropped
	r.CellsNulled += other.CellsNulled
	for col, n := range other.NulledByColumn {
		r.NulledByColumn[col] += n
	}
	if other.errs != nil {
		r.errs = multierror.Append(r.errs, other.errs.Errors...)
	}
}
