package sessionlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tradingagents/internal/types"
)

var mu sync.Mutex

type Entry struct {
	Time       string               `json:"time"`
	SessionID  string               `json:"session_id"`
	Config     types.SessionConfig  `json:"config"`
	Analysis   types.AnalysisConfig `json:"analysis"`
	Translated bool                 `json:"translated"`
	SavedFiles []string             `json:"saved_files,omitempty"`
	Error      string               `json:"error,omitempty"`
}

type Log struct {
	dir string
	now func() time.Time
}

// New logs under dir/sessions. An empty dir means TRADINGAGENTS_LOG_DIR, or
// "logs".
func New(dir string) *Log {
	if dir == "" {
		dir = os.Getenv("TRADINGAGENTS_LOG_DIR")
	}
	if dir == "" {
		dir = "logs"
	}
	return &Log{dir: filepath.Join(dir, "sessions"), now: time.Now}
}

func (l *Log) dailyFilepath(t time.Time) string {
	return filepath.Join(l.dir, t.Format(time.DateOnly)+".txt")
}

// Append writes e as one JSON line to today's file.
func (l *Log) Append(e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := l.now()
	e.Time = now.Format(time.DateTime)
	if e.SessionID == "" {
		e.SessionID = e.Config.SessionID
	}
	p := l.dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips daily files last modified more than retentionDays
// ago. Zero or less disables it.
func (l *Log) CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	cutoff := l.now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(l.dir, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".txt" {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		gz := p + ".gz"
		// already compressed by an earlier run
		if _, err := os.Stat(gz); err == nil {
			_ = os.Remove(p)
			return nil
		}
		if err := gzipFile(p, gz); err != nil {
			_ = os.Remove(gz)
			return nil
		}
		_ = os.Remove(p)
		return nil
	})
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	gw := gzip.NewWriter(out)
	if _, err := io.Copy(gw, in); err != nil {
		_ = gw.Close()
		_ = out.Close()
		return err
	}
	if err := gw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
