/*Package interval implements the interval engine behind fimo2bed: a value
  type for one genomic region parsed from a "chrom:start-end" coordinate
  string, shift/center repositioning, a deduplicating collector that keys on
  the final coordinates and keeps the best-scoring occupant of each region,
  and a genome-order sort whose chromosome keys are numeric ("chr2" before
  "chr17", with chrUn/chrX/chrY pinned after the numbered chromosomes)
  rather than lexicographic.
  (Note the dedup policy: replacement requires a strictly better score, so
  equal-score duplicates keep whichever record arrived first.)
*/
package interval
