package notify

import "sync"

// Tracker remembers which alerts were delivered. Seen is asked before an
// alert is built; Mark is called only once the Notifier accepted it, so an
// alert that was not delivered is offered again on the next scan.
type Tracker interface {
	Seen(id string, offset int) bool
	Mark(id string, offset int)
}

// Always notifies on every scan, so a record sitting at an alert offset is
// reported once per interval for the whole day.
type Always struct{}

func (Always) Seen(string, int) bool { return false }
func (Always) Mark(string, int)      {}

// OncePerOffset remembers the last offset delivered per record and
// suppresses repeats until the offset changes.
type OncePerOffset struct {
	mu   sync.Mutex
	last map[string]int
}

func NewOncePerOffset() *OncePerOffset {
	return &OncePerOffset{last: make(map[string]int)}
}

func (t *OncePerOffset) Seen(id string, offset int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev, ok := t.last[id]
	return ok && prev == offset
}

func (t *OncePerOffset) Mark(id string, offset int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last[id] = offset
}
