package logkick

import "sync"

// captureDrain records everything it receives, for asserting on pipeline
// output without touching real writers.
type captureDrain struct {
	mu      sync.Mutex
	records []Record
}

func (d *captureDrain) Log(r Record) {
	d.mu.Lock()
	d.records = append(d.records, r)
	d.mu.Unlock()
}

func (d *captureDrain) all() []Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

func (d *captureDrain) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

func (d *captureDrain) messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.records))
	for _, r := range d.records {
		out = append(out, r.Message)
	}
	return out
}
