// Package fimo2bed converts FIMO motif-scanner output into a deduplicated
// six-column BED file. Each scanned fragment can be relocated to its motif
// bounds and recentered on a fixed window; fragments that end up on the same
// final region are deduplicated, keeping the best-scoring match.
package fimo2bed

import (
	"io"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/fimo2bed/fimo"
	"github.com/grailbio/fimo2bed/interval"
	"github.com/pkg/errors"
)

// Opts controls one conversion pass.
type Opts struct {
	// SetName labels every emitted interval name
	// ("{chrom}:{start}-{end}|{SetName}_{serial}").
	SetName string
	// Shift relocates each fragment to the motif bounds reported in the
	// scanner's start/stop columns before anything else happens to it.
	Shift bool
	// Sort emits intervals in genome order (numeric chromosome, then start,
	// then end) and renumbers serials densely in that order. Without it,
	// intervals come out in first-seen order with their original serials.
	Sort bool
	// CenterWidth, when nonzero, recenters each fragment on a window
	// extending CenterWidth bases on either side of its midpoint, after any
	// shift.
	CenterWidth int
}

// DefaultOpts is the default Opts used by bio-fimo2bed.
var DefaultOpts = Opts{
	SetName: "default",
}

// Convert reads fimo.tsv records from in and writes the deduplicated BED to
// out. Serials are assigned 1, 2, 3, ... in arrival order before dedup, so a
// surviving interval keeps the serial of the record that won its region.
// Every input record produces one decision row on audit, in arrival order,
// even when the final output is sorted. Any malformed record aborts the
// pass with an error; audit rows written up to that point are flushed first,
// as evidence of how far the pass got.
func Convert(in io.Reader, out, audit io.Writer, opts *Opts) (err error) {
	coll, err := interval.NewCollector(audit)
	if err != nil {
		return err
	}
	defer func() {
		if ferr := coll.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	rr := fimo.NewReader(in, opts.Shift)
	nRecs := 0
	for {
		rec, rerr := rr.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
		nRecs++
		frag, ferr := interval.New(rec.SequenceName, rec.Score, rec.Strand, opts.SetName, nRecs)
		if ferr != nil {
			return errors.Wrapf(ferr, "record %d", nRecs)
		}
		if opts.Shift {
			startShift, serr := strconv.Atoi(rec.Start)
			if serr != nil {
				return errors.Wrapf(serr, "record %d: bad motif start %q", nRecs, rec.Start)
			}
			endShift, serr := strconv.Atoi(rec.Stop)
			if serr != nil {
				return errors.Wrapf(serr, "record %d: bad motif stop %q", nRecs, rec.Stop)
			}
			frag.Shift(startShift, endShift)
		}
		if opts.CenterWidth != 0 {
			frag.Center(opts.CenterWidth)
		}
		if aerr := coll.Add(frag); aerr != nil {
			return aerr
		}
	}

	ivs, err := coll.Intervals(opts.Sort)
	if err != nil {
		return err
	}
	if err := interval.WriteBED(out, ivs); err != nil {
		return err
	}
	log.Printf("fimo2bed: %d unique interval(s) from %d record(s)", len(ivs), nRecs)
	return nil
}
