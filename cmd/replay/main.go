// Command replay inspects a recorded run: it decodes ticks-*.jsonl.zst
// files and prints per-window activity summaries.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	ticklog "roomkeeper/internal/persistence/log"
	"roomkeeper/internal/sim/engine"
)

func main() {
	var (
		dir    = flag.String("ticks", "./data/ticks", "directory containing ticks-*.jsonl.zst")
		window = flag.Uint64("window", 100, "summary window in ticks")
	)
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*dir, "ticks-*.jsonl.zst"))
	if err != nil || len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no tick logs under %s\n", *dir)
		os.Exit(2)
	}
	sort.Strings(files)

	var reports []engine.TickReport
	for _, f := range files {
		reps, err := ticklog.ReadTicks(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", f, err)
			os.Exit(1)
		}
		reports = append(reports, reps...)
	}
	if len(reports) == 0 {
		fmt.Println("empty run")
		return
	}

	fmt.Printf("run of %d ticks (%d..%d)\n", len(reports), reports[0].Tick, reports[len(reports)-1].Tick)

	var sum engine.TickReport
	var elapsed float64
	start := reports[0].Tick
	flush := func(last uint64) {
		fmt.Printf("ticks %6d..%-6d | assigned=%-5d executed=%-6d evicted=%-5d idle=%-5d spawned=%-3d attacks=%-3d avg=%.3fms\n",
			start, last, sum.Assigned, sum.Executed, sum.Evicted, sum.Idle, sum.Spawned, sum.Attacks,
			elapsed/float64(last-start+1))
	}
	for i, rep := range reports {
		sum.Assigned += rep.Assigned
		sum.Executed += rep.Executed
		sum.Evicted += rep.Evicted
		sum.Idle += rep.Idle
		sum.Spawned += rep.Spawned
		sum.Attacks += rep.Attacks
		elapsed += rep.ElapsedMS
		if (rep.Tick-start+1)%*window == 0 || i == len(reports)-1 {
			flush(rep.Tick)
			sum = engine.TickReport{}
			elapsed = 0
			start = rep.Tick + 1
		}
	}
}
