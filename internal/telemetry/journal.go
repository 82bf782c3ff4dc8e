// Package telemetry records gamification activity as a JSONL journal.
// The journal is append-only and replayed to answer calendar questions
// the live state cannot (cards completed today, this week). Losing it
// degrades goal progress to zero counts; nothing else depends on it.
package telemetry

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

const (
	EventLogin      = "login"
	EventComplete   = "complete"
	EventUncomplete = "uncomplete"
	EventBookmark   = "bookmark"
	EventUnbookmark = "unbookmark"
	EventUnlock     = "unlock"
)

type Event struct {
	TS     time.Time `json:"ts"`
	Type   string    `json:"type"`
	CardID string    `json:"card_id,omitempty"`
	Ref    string    `json:"ref,omitempty"`
}

type Journal struct {
	mu   sync.Mutex
	path string
	w    io.WriteCloser
}

// NewJournal opens the journal for appending. An empty path yields a
// journal that discards writes and counts nothing.
func NewJournal(path string) (*Journal, error) {
	if path == "" {
		return &Journal{w: nopCloser{Writer: io.Discard}}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Journal{path: path, w: f}, nil
}

func (j *Journal) Append(ev Event) {
	if j == nil || j.w == nil {
		return
	}
	if ev.TS.IsZero() {
		ev.TS = time.Now()
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	_, _ = j.w.Write(append(b, '\n'))
}

// CompletedOn counts net completions recorded on day's calendar date:
// complete events minus uncomplete events, floored at zero.
func (j *Journal) CompletedOn(day time.Time) int {
	y, m, d := day.Date()
	return j.countNet(func(ts time.Time) bool {
		ey, em, ed := ts.Date()
		return ey == y && em == m && ed == d
	})
}

// CompletedInWeek counts net completions in the ISO week containing day.
func (j *Journal) CompletedInWeek(day time.Time) int {
	wy, ww := day.ISOWeek()
	return j.countNet(func(ts time.Time) bool {
		ey, ew := ts.ISOWeek()
		return ey == wy && ew == ww
	})
}

func (j *Journal) countNet(match func(time.Time) bool) int {
	if j == nil || j.path == "" {
		return 0
	}
	f, err := os.Open(j.path)
	if err != nil {
		return 0
	}
	defer f.Close()

	net := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			continue
		}
		if !match(ev.TS) {
			continue
		}
		switch ev.Type {
		case EventComplete:
			net++
		case EventUncomplete:
			net--
		}
	}
	if net < 0 {
		net = 0
	}
	return net
}

func (j *Journal) Close() error {
	if j == nil || j.w == nil {
		return nil
	}
	return j.w.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
