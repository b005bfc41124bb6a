package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"roomkeeper/internal/persistence/indexdb"
	ticklog "roomkeeper/internal/persistence/log"
	"roomkeeper/internal/sim/engine"
	"roomkeeper/internal/sim/tuning"
	"roomkeeper/internal/sim/world"
)

func main() {
	var (
		configPath   = flag.String("config", "configs/tuning.yaml", "tuning file (optional; defaults apply if missing)")
		ticks        = flag.Uint64("ticks", 1000, "ticks to simulate")
		dataDir      = flag.String("data", "./data", "directory for tick logs and the index db")
		seed         = flag.Int64("seed", 0, "override the tuning seed (0 = keep)")
		hostileEvery = flag.Uint64("hostile_every", 200, "inject one hostile every N ticks (0 = never)")
		logEvery     = flag.Uint64("log_every", 100, "print a progress line every N ticks")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "roomkeeper: ", log.LstdFlags)

	var t tuning.Tuning
	if _, err := os.Stat(*configPath); err == nil {
		t, err = tuning.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load tuning:", err)
			os.Exit(1)
		}
	} else {
		logger.Printf("no tuning file at %s, using defaults", *configPath)
	}
	if *seed != 0 {
		t.Seed = *seed
	}
	if t.Seed == 0 {
		t.Seed = 200
	}

	w := world.Generate(t.WorldConfig("sim"))
	eng := engine.New(t.EnginePolicy(), t.Seed, logger)

	tlog, err := ticklog.NewTickLogger(filepath.Join(*dataDir, "ticks"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "tick logger:", err)
		os.Exit(1)
	}
	defer tlog.Close()

	idx, err := indexdb.Open(filepath.Join(*dataDir, "index.db"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "index db:", err)
		os.Exit(1)
	}
	defer idx.Close()

	logger.Printf("simulating %d ticks | seed=%d creeps=%d sources=%d",
		*ticks, t.Seed, w.CreepCount(), len(w.Sources()))

	tm := engine.StartTimer("main loop", logger)
	defer tm.Stop()

	for i := uint64(0); i < *ticks; i++ {
		if *hostileEvery > 0 && i > 0 && i%*hostileEvery == 0 {
			w.AddHostile(world.Pos{X: 0, Y: int(i) % w.Config().Height}, 600)
		}

		rep := eng.RunTick(w)
		if err := tlog.WriteTick(rep); err != nil {
			logger.Printf("tick log: %v", err)
		}
		idx.WriteTick(rep)
		w.Step()

		if *logEvery > 0 && rep.Tick%*logEvery == 0 {
			logger.Printf("tick %d | creeps=%d assigned=%d executed=%d evicted=%d idle=%d spawned=%d attacks=%d %.2fms",
				rep.Tick, rep.Creeps, rep.Assigned, rep.Executed, rep.Evicted,
				rep.Idle, rep.Spawned, rep.Attacks, rep.ElapsedMS)
		}
	}

	recent, err := idx.RecentTicks(context.Background(), 10)
	if err != nil {
		logger.Printf("recent ticks: %v", err)
		return
	}
	for _, rep := range recent {
		logger.Printf("indexed tick %d | creeps=%d executed=%d", rep.Tick, rep.Creeps, rep.Executed)
	}
	if ctl := w.Controller(); ctl != nil {
		logger.Printf("controller level=%d progress=%d downgrade_in=%d", ctl.Level, ctl.Progress, ctl.TicksToDowngrade)
	}
}
