package logger

import "sync"

// Entry is a single recorded log call.
type Entry struct {
	Level         string
	Message       string
	KeysAndValues []any
}

// Recorder is a Logger implementation that captures every entry in memory.
// Tests use it to assert on announcement content and ordering.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates a new, empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, msg string, keysAndValues ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, KeysAndValues: keysAndValues})
}

func (r *Recorder) Debug(msg string, keysAndValues ...any) { r.record("debug", msg, keysAndValues...) }
func (r *Recorder) Info(msg string, keysAndValues ...any)  { r.record("info", msg, keysAndValues...) }
func (r *Recorder) Warn(msg string, keysAndValues ...any)  { r.record("warn", msg, keysAndValues...) }
func (r *Recorder) Error(msg string, keysAndValues ...any) { r.record("error", msg, keysAndValues...) }
func (r *Recorder) Fatal(msg string, keysAndValues ...any) { r.record("fatal", msg, keysAndValues...) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the recorded messages in emission order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Message)
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
