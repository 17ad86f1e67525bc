package interval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
)

// Interval is one genomic region derived from one motif-scanner match. It
// carries everything needed to emit a six-column BED row: coordinates, the
// match score, the strand, and the set label + serial that together form the
// output name.
type Interval struct {
	Chrom string
	Start int
	End   int
	// Score is the scanner's match quality. It decides which of two
	// intervals covering the same region survives deduplication.
	Score  float64
	Strand string
	// SetName labels the output name column ("{region}|{SetName}_{Serial}").
	SetName string
	// Serial is the interval's 1-based assignment number. When output is
	// genome-sorted it is rewritten to the interval's rank in that order.
	Serial int
}

// New parses a scanner sequence name of the form "chrom:start-end" into an
// Interval. Coordinates are passed through as written; nothing rejects
// negative or inverted ranges, matching the permissive upstream tools.
func New(seqName, score, strand, setName string, serial int) (Interval, error) {
	colon := strings.IndexByte(seqName, ':')
	if colon < 0 {
		return Interval{}, fmt.Errorf("interval.New: no ':' in sequence name %q", seqName)
	}
	span := seqName[colon+1:]
	dash := strings.IndexByte(span, '-')
	if dash < 0 {
		return Interval{}, fmt.Errorf("interval.New: no '-' in sequence name %q", seqName)
	}
	start, err := strconv.Atoi(span[:dash])
	if err != nil {
		return Interval{}, fmt.Errorf("interval.New: bad start in %q: %v", seqName, err)
	}
	end, err := strconv.Atoi(span[dash+1:])
	if err != nil {
		return Interval{}, fmt.Errorf("interval.New: bad end in %q: %v", seqName, err)
	}
	s, err := strconv.ParseFloat(score, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("interval.New: bad score %q for %q: %v", score, seqName, err)
	}
	return Interval{
		Chrom:   seqName[:colon],
		Start:   start,
		End:     end,
		Score:   s,
		Strand:  strand,
		SetName: setName,
		Serial:  serial,
	}, nil
}

// Shift relocates the interval to the motif bounds reported by the scanner.
// startShift and endShift are the scanner's start/stop columns: 1-based
// offsets within the original fragment, with endShift measured from the new
// start. Apply before Center.
func (iv *Interval) Shift(startShift, endShift int) {
	iv.Start += startShift
	iv.End = iv.Start + endShift - startShift - 1
}

// Center repositions the interval to a symmetric window extending width bases
// on either side of its midpoint.
func (iv *Interval) Center(width int) {
	mid := (iv.Start + iv.End) >> 1 // floor, not truncate
	iv.Start = mid - width
	iv.End = mid + width
}

// Name returns "chrom:start-end" for the interval's current coordinates.
// This string is the interval's identity: two matches whose final (post
// Shift/Center) coordinates coincide are the same interval for dedup
// purposes.
func (iv *Interval) Name() string {
	return iv.Chrom + ":" + strconv.Itoa(iv.Start) + "-" + strconv.Itoa(iv.End)
}

// Sort keys for contigs without a chromosome number. Un sorts after every
// numbered chromosome, X and Y after Un.
const (
	chrUnKey = 99
	chrXKey  = 100
	chrYKey  = 101
)

// ChromSortKey maps the chromosome label to an integer that sorts numbered
// chromosomes numerically ("chr2" before "chr17") with the unnumbered
// contigs pinned after them. Any suffix after the first '_' is ignored, so
// "chr17_GL000258v2_alt" keys the same as "chr17".
//
// The label must follow the UCSC "chr" naming convention; anything else
// (including chrM) is an error rather than a silently wrong key.
func (iv *Interval) ChromSortKey() (int, error) {
	if !strings.HasPrefix(iv.Chrom, "chr") {
		return 0, fmt.Errorf("interval.ChromSortKey: %q does not follow the chr-prefix naming convention", iv.Chrom)
	}
	label := iv.Chrom[3:]
	if i := strings.IndexByte(label, '_'); i >= 0 {
		label = label[:i]
	}
	switch label {
	case "Un":
		return chrUnKey, nil
	case "X":
		return chrXKey, nil
	case "Y":
		return chrYKey, nil
	}
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, fmt.Errorf("interval.ChromSortKey: no chromosome number in %q", iv.Chrom)
	}
	return n, nil
}

// writeBEDRow appends the interval as one six-column BED row. The name
// column reflects the coordinates and serial at emission time.
func (iv *Interval) writeBEDRow(w *tsv.Writer) error {
	w.WriteString(iv.Chrom)
	w.WriteInt64(int64(iv.Start))
	w.WriteInt64(int64(iv.End))
	w.WriteString(iv.Name() + "|" + iv.SetName + "_" + strconv.Itoa(iv.Serial))
	w.WriteFloat64(iv.Score, 'g', -1)
	w.WriteString(iv.Strand)
	return w.EndLine()
}
