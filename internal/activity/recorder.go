package activity

import "time"

// Recorder appends entries to a log file as operations happen. A Recorder
// with an empty path, or a nil Recorder, drops everything.
type Recorder struct {
	path string
	now  func() time.Time
}

// NewRecorder returns a Recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path, now: time.Now}
}

// Enabled reports whether entries are written anywhere.
func (r *Recorder) Enabled() bool {
	return r != nil && r.path != ""
}

// Record stamps e with the current time, if unset, and appends it.
func (r *Recorder) Record(e Entry) error {
	if !r.Enabled() {
		return nil
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = r.now().UTC()
	}
	return Append(r.path, []Entry{e})
}
