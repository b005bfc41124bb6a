// Package log persists per-tick engine reports as zstd-compressed
// JSONL, one file per run.
package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"roomkeeper/internal/sim/engine"
)

type TickLogger struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewTickLogger opens a fresh ticks-<timestamp>.jsonl.zst under dir.
func NewTickLogger(dir string) (*TickLogger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("ticks-%s.jsonl.zst", time.Now().UTC().Format("20060102-150405"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &TickLogger{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

func (l *TickLogger) WriteTick(rep engine.TickReport) error {
	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	if _, err := l.w.Write(b); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	return l.w.Flush()
}

func (l *TickLogger) Close() error {
	if err := l.w.Flush(); err != nil {
		return err
	}
	if err := l.enc.Close(); err != nil {
		_ = l.f.Close()
		return err
	}
	return l.f.Close()
}

// ReadTicks decodes every report from a ticks-*.jsonl.zst file;
// replay tooling and tests use it.
func ReadTicks(path string) ([]engine.TickReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []engine.TickReport
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rep engine.TickReport
		if err := json.Unmarshal(line, &rep); err != nil {
			return out, err
		}
		out = append(out, rep)
	}
	return out, sc.Err()
}
