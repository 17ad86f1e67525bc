package fimo2bed

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fimoHeader = "motif_id\tmotif_alt_id\tsequence_name\tstart\tstop\tstrand\tscore\tp-value\tq-value\tmatched_sequence\n"

func fimoRow(seqName, start, stop, strand, score string) string {
	return strings.Join([]string{
		"GTGGCACCAGGTGGCAGCA", "MA0139.1", seqName, start, stop, strand, score, "1e-06", "0.03", "GTGGCACCAGGTGGCAGCA",
	}, "\t") + "\n"
}

func convert(t *testing.T, in string, opts Opts) (bed, audit string, err error) {
	t.Helper()
	var out, auditBuf bytes.Buffer
	err = Convert(strings.NewReader(in), &out, &auditBuf, &opts)
	return out.String(), auditBuf.String(), err
}

func TestConvertDedup(t *testing.T) {
	in := fimoHeader +
		fimoRow("chr1:100-200", "1", "5", "+", "5.0") +
		fimoRow("chr1:100-200", "1", "5", "+", "9.0")
	bed, audit, err := convert(t, in, DefaultOpts)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t100\t200\tchr1:100-200|default_2\t9\t+\n", bed)
	assert.Equal(t,
		"action\tinterval\treason\n"+
			"append\tchr1:100-200\tnew fragment\n"+
			"replace\tchr1:100-200\tscore 9 outranks existing 5\n",
		audit)
}

func TestConvertShiftCenter(t *testing.T) {
	in := fimoHeader + fimoRow("chr1:91369-91487", "14", "32", "+", "16.2951")
	opts := Opts{SetName: "cfdna", Shift: true, CenterWidth: 50}
	bed, _, err := convert(t, in, opts)
	require.NoError(t, err)
	// Shift: start 91369+14 = 91383, end 91383+32-14-1 = 91400.
	// Center: midpoint 91391, +/- 50.
	assert.Equal(t, "chr1\t91341\t91441\tchr1:91341-91441|cfdna_1\t16.2951\t+\n", bed)
}

// Shift and center can make distinct scanner rows collide; dedup must see
// the final coordinates.
func TestConvertDedupAfterRepositioning(t *testing.T) {
	in := fimoHeader +
		fimoRow("chr1:1000-1100", "11", "30", "+", "4.0") +
		fimoRow("chr1:1010-1090", "1", "20", "-", "6.0")
	// Both shift to start 1011, end 1029, so both center on 1020.
	opts := Opts{SetName: "s", Shift: true, CenterWidth: 5}
	bed, audit, err := convert(t, in, opts)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t1015\t1025\tchr1:1015-1025|s_2\t6\t-\n", bed)
	assert.Contains(t, audit, "replace\tchr1:1015-1025\t")
}

func TestConvertUnsortedKeepsSerialGaps(t *testing.T) {
	in := fimoHeader +
		fimoRow("chr1:100-200", "1", "5", "+", "5.0") +
		fimoRow("chr1:100-200", "1", "5", "+", "2.0") + // serial 2 skipped
		fimoRow("chr2:100-200", "1", "5", "+", "1.0")
	bed, _, err := convert(t, in, DefaultOpts)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(bed, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "|default_1\t")
	assert.Contains(t, lines[1], "|default_3\t")
	assert.NotContains(t, bed, "|default_2\t")
}

func TestConvertSorted(t *testing.T) {
	in := fimoHeader +
		fimoRow("chrX:5-10", "1", "5", "+", "1.0") +
		fimoRow("chr17:5-10", "1", "5", "+", "1.0") +
		fimoRow("chr2:500-600", "1", "5", "+", "1.0") +
		fimoRow("chrUn_gl000220:5-10", "1", "5", "+", "1.0") +
		fimoRow("chr2:5-10", "1", "5", "+", "1.0") +
		fimoRow("chrY:5-10", "1", "5", "+", "1.0")
	opts := Opts{SetName: "s", Sort: true}
	bed, audit, err := convert(t, in, opts)
	require.NoError(t, err)
	assert.Equal(t,
		"chr2\t5\t10\tchr2:5-10|s_1\t1\t+\n"+
			"chr2\t500\t600\tchr2:500-600|s_2\t1\t+\n"+
			"chr17\t5\t10\tchr17:5-10|s_3\t1\t+\n"+
			"chrUn_gl000220\t5\t10\tchrUn_gl000220:5-10|s_4\t1\t+\n"+
			"chrX\t5\t10\tchrX:5-10|s_5\t1\t+\n"+
			"chrY\t5\t10\tchrY:5-10|s_6\t1\t+\n",
		bed)
	// The audit trail stays in arrival order even when output is sorted.
	auditLines := strings.Split(strings.TrimSuffix(audit, "\n"), "\n")
	require.Len(t, auditLines, 7)
	assert.Equal(t, "append\tchrX:5-10\tnew fragment", auditLines[1])
	assert.Equal(t, "append\tchrY:5-10\tnew fragment", auditLines[6])
}

// Feeding the converter's own unsorted output back through it (same set
// name, no repositioning) reproduces the same coordinate set.
func TestConvertRoundTrip(t *testing.T) {
	in := fimoHeader +
		fimoRow("chr1:100-200", "1", "5", "+", "5.0") +
		fimoRow("chr1:100-200", "1", "5", "+", "9.0") +
		fimoRow("chr3:7-90", "1", "5", "-", "2.5")
	bed1, _, err := convert(t, in, DefaultOpts)
	require.NoError(t, err)

	var in2 strings.Builder
	in2.WriteString("sequence_name\tscore\tstrand\n")
	for _, line := range strings.Split(strings.TrimSuffix(bed1, "\n"), "\n") {
		cols := strings.Split(line, "\t")
		require.Len(t, cols, 6)
		seqName := strings.SplitN(cols[3], "|", 2)[0]
		in2.WriteString(seqName + "\t" + cols[4] + "\t" + cols[5] + "\n")
	}
	bed2, _, err := convert(t, in2.String(), DefaultOpts)
	require.NoError(t, err)

	coords := func(bed string) []string {
		var out []string
		for _, line := range strings.Split(strings.TrimSuffix(bed, "\n"), "\n") {
			cols := strings.Split(line, "\t")
			out = append(out, cols[0]+":"+cols[1]+"-"+cols[2])
		}
		sort.Strings(out)
		return out
	}
	assert.Equal(t, coords(bed1), coords(bed2))
}

func TestConvertMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Opts
	}{
		{"bad score", fimoHeader + fimoRow("chr1:100-200", "1", "5", "+", "n/a"), DefaultOpts},
		{"bad coords", fimoHeader + fimoRow("chr1_100_200", "1", "5", "+", "1.0"), DefaultOpts},
		{"bad motif start", fimoHeader + fimoRow("chr1:100-200", "x", "5", "+", "1.0"), Opts{SetName: "s", Shift: true}},
		{"bad motif stop", fimoHeader + fimoRow("chr1:100-200", "1", "x", "+", "1.0"), Opts{SetName: "s", Shift: true}},
		{"unsortable chromosome", fimoHeader + fimoRow("ctg7:100-200", "1", "5", "+", "1.0"), Opts{SetName: "s", Sort: true}},
	}
	for _, tt := range tests {
		_, audit, err := convert(t, tt.in, tt.opts)
		require.Error(t, err, tt.name)
		// The audit header is flushed even on abort.
		assert.Contains(t, audit, "action\tinterval\treason\n", tt.name)
	}
}

// A failed pass still leaves the decisions made before the failure on the
// audit stream.
func TestConvertPartialAuditOnFailure(t *testing.T) {
	in := fimoHeader +
		fimoRow("chr1:100-200", "1", "5", "+", "5.0") +
		fimoRow("chr2:50-60", "1", "5", "+", "bogus")
	_, audit, err := convert(t, in, DefaultOpts)
	require.Error(t, err)
	assert.Equal(t,
		"action\tinterval\treason\n"+
			"append\tchr1:100-200\tnew fragment\n",
		audit)
}
