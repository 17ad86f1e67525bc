// Package fimo reads the TSV match table produced by the FIMO motif scanner
// (MEME suite). Only the columns the fimo2bed pipeline consumes are bound;
// the rest of the table (motif IDs, p/q-values, matched sequence) is
// ignored.
package fimo

import (
	"io"

	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// Record is one motif match. Fields are kept as raw strings; numeric
// interpretation, and its failure modes, belongs to the interval layer.
type Record struct {
	// SequenceName locates the scanned fragment, "chrom:start-end".
	SequenceName string
	// Start and Stop are the motif bounds within the fragment, 1-based.
	// They are populated only by a Reader in bounds mode.
	Start string
	Stop  string
	// Score is the match quality.
	Score string
	// Strand is "+" or "-", passed through unvalidated.
	Strand string
}

// row binds the minimal column set.
type row struct {
	SequenceName string `tsv:"sequence_name"`
	Score        string `tsv:"score"`
	Strand       string `tsv:"strand"`
}

// boundsRow additionally binds the motif start/stop columns, required in
// shift mode.
type boundsRow struct {
	SequenceName string `tsv:"sequence_name"`
	Start        string `tsv:"start"`
	Stop         string `tsv:"stop"`
	Score        string `tsv:"score"`
	Strand       string `tsv:"strand"`
}

// Reader streams Records out of a fimo.tsv. Lines starting with '#' are
// comments; the first non-comment line must be the header row, and columns
// are matched to it by name, in any order.
type Reader struct {
	r      *tsv.Reader
	bounds bool
	nRecs  int
}

// NewReader returns a Reader over r. With bounds set, the start and stop
// columns are required and carried through to each Record; without it they
// may be absent from the input entirely.
func NewReader(r io.Reader, bounds bool) *Reader {
	tr := tsv.NewReader(r)
	tr.Comment = '#'
	tr.HasHeaderRow = true
	tr.UseHeaderNames = true
	return &Reader{r: tr, bounds: bounds}
}

// Read returns the next match, or io.EOF after the last one.
func (r *Reader) Read() (Record, error) {
	var rec Record
	if r.bounds {
		var v boundsRow
		if err := r.r.Read(&v); err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, errors.Wrapf(err, "fimo: record %d", r.nRecs+1)
		}
		rec = Record{
			SequenceName: v.SequenceName,
			Start:        v.Start,
			Stop:         v.Stop,
			Score:        v.Score,
			Strand:       v.Strand,
		}
	} else {
		var v row
		if err := r.r.Read(&v); err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, errors.Wrapf(err, "fimo: record %d", r.nRecs+1)
		}
		rec = Record{
			SequenceName: v.SequenceName,
			Score:        v.Score,
			Strand:       v.Strand,
		}
	}
	r.nRecs++
	return rec, nil
}
