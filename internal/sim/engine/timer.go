package engine

import (
	"log"
	"time"
)

// TimerLog measures a named scope and logs elapsed wall time when
// stopped; the engine wraps each tick in one to report against the
// external CPU budget.
type TimerLog struct {
	name  string
	start time.Time
	log   *log.Logger
}

func StartTimer(name string, logger *log.Logger) *TimerLog {
	return &TimerLog{name: name, start: time.Now(), log: logger}
}

// Stop logs the elapsed time and returns it in milliseconds.
func (t *TimerLog) Stop() float64 {
	ms := float64(time.Since(t.start).Microseconds()) / 1000.0
	if t.log != nil {
		t.log.Printf("%s done | %.2fms", t.name, ms)
	}
	return ms
}
