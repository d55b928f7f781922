// Package replay records dispatched actions as a JSON-lines journal and
// folds them back into a fresh container. Because reducers are pure and
// dispatch is strictly ordered, replaying a journal reproduces the original
// tree exactly.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
)

// Entry is one journaled dispatch.
type Entry struct {
	Seq    uint64        `json:"seq"`
	Time   time.Time     `json:"time"`
	Action domain.Action `json:"action"`
}

// Recorder appends every dispatched action to a writer, one JSON object per
// line. Attach it via Hooks(). No-op dispatches are recorded too: replay
// refolds them identically, and their presence keeps sequence numbers
// aligned with what the host actually dispatched.
type Recorder struct {
	mu  sync.Mutex
	enc *json.Encoder
	seq uint64
	err error
}

// NewRecorder creates a recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

// Hooks adapts the recorder to container lifecycle hooks.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			r.record(e.Action, e.Timestamp)
		},
	}
}

// Err returns the first write error encountered, if any. Hook callbacks
// cannot return errors, so the recorder is sticky-failed instead.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Recorder) record(a domain.Action, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return
	}
	r.seq++
	if err := r.enc.Encode(Entry{Seq: r.seq, Time: at, Action: a}); err != nil {
		r.err = fmt.Errorf("failed to write journal entry %d: %w", r.seq, err)
	}
}

// ReadJournal parses a JSON-lines journal. Blank lines are skipped.
func ReadJournal(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("failed to parse journal line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}
