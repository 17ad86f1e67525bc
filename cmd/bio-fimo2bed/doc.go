// Copyright 2021 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
bio-fimo2bed converts the TSV match table written by the FIMO motif scanner
into a six-column BED file, keeping the best-scoring match for every distinct
genomic region.

Each fragment can optionally be relocated to the motif bounds reported in the
scanner's start/stop columns (-shift) and recentered on a fixed window around
its midpoint (-center). Deduplication happens on the final coordinates: two
records whose repositioned regions coincide are duplicates, and the one with
the strictly higher score wins (ties keep the earlier record). With -sort,
output comes out in genome order (chr2 before chr17; chrUn, chrX, chrY after
the numbered chromosomes) and serial numbers are reassigned 1..N in that
order.

One decision line per input record (append, skip, or replace, with the
reason) is written to the audit stream, always in input order.

Sample usage:
bio-fimo2bed \
    -set ctcf_mcf7 \
    -shift \
    -center 50 \
    -sort \
    -in fimo.tsv.gz \
    -out motifs.bed \
    -audit decisions.tsv
*/
package main
