// Package indexdb keeps a queryable sqlite index of per-tick engine
// reports. Writes go through a single writer goroutine so the tick
// loop never blocks on disk.
package indexdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"roomkeeper/internal/sim/engine"
)

type SQLiteIndex struct {
	db *sql.DB

	ch     chan engine.TickReport
	wg     sync.WaitGroup
	once   sync.Once
	closed atomic.Bool
}

const schema = `
CREATE TABLE IF NOT EXISTS ticks (
	tick        INTEGER PRIMARY KEY,
	creeps      INTEGER NOT NULL,
	assigned    INTEGER NOT NULL,
	executed    INTEGER NOT NULL,
	evicted     INTEGER NOT NULL,
	idle        INTEGER NOT NULL,
	spawned     INTEGER NOT NULL,
	attacks     INTEGER NOT NULL,
	elapsed_ms  REAL NOT NULL,
	created_at  INTEGER NOT NULL
);`

func Open(path string) (*SQLiteIndex, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("indexdb: %w", err)
	}
	idx := &SQLiteIndex{
		db: db,
		ch: make(chan engine.TickReport, 256),
	}
	idx.wg.Add(1)
	go idx.writer()
	return idx, nil
}

func (x *SQLiteIndex) writer() {
	defer x.wg.Done()
	for rep := range x.ch {
		_, err := x.db.Exec(
			`INSERT OR REPLACE INTO ticks
			 (tick, creeps, assigned, executed, evicted, idle, spawned, attacks, elapsed_ms, created_at)
			 VALUES (?,?,?,?,?,?,?,?,?,?)`,
			rep.Tick, rep.Creeps, rep.Assigned, rep.Executed, rep.Evicted,
			rep.Idle, rep.Spawned, rep.Attacks, rep.ElapsedMS, time.Now().Unix(),
		)
		if err != nil {
			// Index rows are best-effort observability; keep going.
			continue
		}
	}
}

// WriteTick enqueues one report. When the queue is backed up the row
// is dropped rather than stalling the tick.
func (x *SQLiteIndex) WriteTick(rep engine.TickReport) {
	if x.closed.Load() {
		return
	}
	select {
	case x.ch <- rep:
	default:
	}
}

// RecentTicks returns up to n reports with the highest tick numbers,
// oldest first.
func (x *SQLiteIndex) RecentTicks(ctx context.Context, n int) ([]engine.TickReport, error) {
	rows, err := x.db.QueryContext(ctx,
		`SELECT tick, creeps, assigned, executed, evicted, idle, spawned, attacks, elapsed_ms
		 FROM ticks ORDER BY tick DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []engine.TickReport
	for rows.Next() {
		var rep engine.TickReport
		if err := rows.Scan(&rep.Tick, &rep.Creeps, &rep.Assigned, &rep.Executed,
			&rep.Evicted, &rep.Idle, &rep.Spawned, &rep.Attacks, &rep.ElapsedMS); err != nil {
			return out, err
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	// Reverse into ascending tick order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Close drains pending writes and closes the database.
func (x *SQLiteIndex) Close() error {
	x.once.Do(func() {
		x.closed.Store(true)
		close(x.ch)
	})
	x.wg.Wait()
	return x.db.Close()
}
