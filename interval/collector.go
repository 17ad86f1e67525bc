package interval

import (
	"fmt"
	"io"
	"sort"

	"github.com/grailbio/base/tsv"
)

// Audit log actions, one per record folded into a Collector.
const (
	actionAppend  = "append"
	actionSkip    = "skip"
	actionReplace = "replace"
)

// Collector folds a stream of Intervals into the set of unique regions,
// keeping the best-scoring occupant of each region. Identity is the Name()
// string, so any repositioning must happen before Add. Not safe for
// concurrent use; one Collector serves one conversion pass.
type Collector struct {
	byName map[string]*Interval
	names  []string // region names in first-seen order
	audit  *tsv.Writer
}

// NewCollector returns an empty Collector. Every Add call appends one
// decision row to audit, in call order; the stream starts with an
// "action/interval/reason" header row.
func NewCollector(audit io.Writer) (*Collector, error) {
	c := &Collector{
		byName: map[string]*Interval{},
		audit:  tsv.NewWriter(audit),
	}
	c.audit.WriteString("action\tinterval\treason")
	if err := c.audit.EndLine(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collector) logDecision(action, name, reason string) error {
	c.audit.WriteString(action)
	c.audit.WriteString(name)
	c.audit.WriteString(reason)
	return c.audit.EndLine()
}

// Add folds one interval into the set. A region seen for the first time is
// appended. A repeat replaces the stored interval only when its score is
// strictly better; on a tie the first arrival is retained, so replacement
// requires strict improvement.
func (c *Collector) Add(frag Interval) error {
	name := frag.Name()
	prev, found := c.byName[name]
	if !found {
		iv := frag
		c.byName[name] = &iv
		c.names = append(c.names, name)
		return c.logDecision(actionAppend, name, "new fragment")
	}
	if frag.Score > prev.Score {
		reason := fmt.Sprintf("score %g outranks existing %g", frag.Score, prev.Score)
		// Overwrite in place; the region keeps its first-seen position.
		*prev = frag
		return c.logDecision(actionReplace, name, reason)
	}
	return c.logDecision(actionSkip, name, fmt.Sprintf("existing score %g outranks %g", prev.Score, frag.Score))
}

// Len returns the number of unique regions collected so far.
func (c *Collector) Len() int { return len(c.byName) }

// Intervals returns the surviving intervals. With genomeOrder they are
// sorted by (chromosome sort key, start, end) and each serial is rewritten
// to the interval's 1-based rank in that order, so serials come out dense.
// Otherwise first-seen order is kept and serials stay as assigned, with gaps
// where duplicates were dropped.
func (c *Collector) Intervals(genomeOrder bool) ([]*Interval, error) {
	ivs := make([]*Interval, 0, len(c.names))
	for _, name := range c.names {
		ivs = append(ivs, c.byName[name])
	}
	if !genomeOrder {
		return ivs, nil
	}
	keys := make([]int, len(ivs))
	for i, iv := range ivs {
		key, err := iv.ChromSortKey()
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	sort.Sort(&genomeSorter{ivs: ivs, keys: keys})
	for i, iv := range ivs {
		iv.Serial = i + 1
	}
	return ivs, nil
}

// Flush flushes buffered audit rows. Call it before abandoning the
// collector, including on error paths: the audit trail is the record of how
// far a failed pass got.
func (c *Collector) Flush() error { return c.audit.Flush() }

// genomeSorter orders intervals by (chromosome sort key, start, end),
// ascending on all three.
type genomeSorter struct {
	ivs  []*Interval
	keys []int
}

func (s *genomeSorter) Len() int { return len(s.ivs) }

func (s *genomeSorter) Swap(i, j int) {
	s.ivs[i], s.ivs[j] = s.ivs[j], s.ivs[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

func (s *genomeSorter) Less(i, j int) bool {
	if s.keys[i] != s.keys[j] {
		return s.keys[i] < s.keys[j]
	}
	if s.ivs[i].Start != s.ivs[j].Start {
		return s.ivs[i].Start < s.ivs[j].Start
	}
	return s.ivs[i].End < s.ivs[j].End
}

// WriteBED writes one six-column BED row per interval to w:
// chrom, start, end, "{chrom}:{start}-{end}|{set}_{serial}", score, strand.
func WriteBED(w io.Writer, ivs []*Interval) error {
	tw := tsv.NewWriter(w)
	for _, iv := range ivs {
		if err := iv.writeBEDRow(tw); err != nil {
			return err
		}
	}
	return tw.Flush()
}
