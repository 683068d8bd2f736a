// Package notify raises expiry alerts. A Scheduler rescans the customer list
// on a fixed interval and hands one alert per record at 15, 7 and 2 days
// before expiry to a Notifier.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// ErrNotPermitted is returned by Gate while alerts are switched off.
var ErrNotPermitted = errors.New("notifications not permitted")

// Notifier delivers a single alert.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// WriterNotifier prints alerts to a terminal or any other writer.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := fmt.Fprintf(n.w, "\n🔔 %s\n   %s\n", title, body)
	return err
}

// Gate forwards alerts only while permission is granted. It starts closed.
type Gate struct {
	next    Notifier
	granted atomic.Bool
}

func NewGate(next Notifier) *Gate {
	return &Gate{next: next}
}

func (g *Gate) Grant()  { g.granted.Store(true) }
func (g *Gate) Revoke() { g.granted.Store(false) }

func (g *Gate) Granted() bool { return g.granted.Load() }

// Notify returns ErrNotPermitted without forwarding when permission is not
// granted.
func (g *Gate) Notify(ctx context.Context, title, body string) error {
	if !g.Granted() {
		return ErrNotPermitted
	}
	return g.next.Notify(ctx, title, body)
}
