package pipeline

import "time"

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total       int // eligible SVG files
	Dispatched  int
	Converted   int
	Failed      int
	TimedOut    int
	Bytes       int64 // total size of converted PDFs
	Elapsed     time.Duration
	Interrupted bool
}

// Skipped returns the number of eligible files never dispatched because
// the run was interrupted.
func (s *RunStats) Skipped() int {
	return s.Total - s.Dispatched
}

func (s *RunStats) record(o Outcome) {
	if o.Err != nil {
		s.Failed++
		if o.TimedOut() {
			s.TimedOut++
		}
		return
	}
	s.Converted++
	s.Bytes += o.Size
}
