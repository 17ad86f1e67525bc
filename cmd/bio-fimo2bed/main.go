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
package main

// See doc.go for documentation

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/fimo2bed"
)

var (
	setName  = flag.String("set", fimo2bed.DefaultOpts.SetName, "Set name appended to each output interval name")
	shift    = flag.Bool("shift", fimo2bed.DefaultOpts.Shift, "Relocate each fragment to the motif bounds in the start/stop columns")
	sortFlag = flag.Bool("sort", fimo2bed.DefaultOpts.Sort, "Emit intervals in genome order and renumber serials to match")
	center   = flag.Int("center", fimo2bed.DefaultOpts.CenterWidth, "Recenter each fragment to this many bases on either side of its midpoint; 0 disables")
	inPath   = flag.String("in", "-", "Input fimo.tsv path; '-' reads stdin. .gz input is decompressed")
	outPath  = flag.String("out", "-", "Output BED path; '-' writes stdout")
	audit    = flag.String("audit", "-", "Audit log path, one decision per input record; '-' writes stderr")
)

func fimo2bedUsage() {
	fmt.Printf("Usage: %s [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = fimo2bedUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 0 {
		log.Fatalf("Unexpected positional arguments %v; input is read from -in", flag.Args())
	}
	ctx := vcontext.Background()
	opts := fimo2bed.Opts{
		SetName:     *setName,
		Shift:       *shift,
		Sort:        *sortFlag,
		CenterWidth: *center,
	}
	if err := fimo2bed.Run(ctx, *inPath, *outPath, *audit, &opts); err != nil {
		log.Fatalf("%v", err)
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	log.Debug.Printf("exiting; %d bytes allocated in total, %d bytes from the OS", ms.TotalAlloc, ms.Sys)
}
