package changefeed

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Channel is a postgres notification channel the change event triggers notify.
const Channel = "change_event"

// Listener turns postgres notifications into wake-ups of the feed.
type Listener struct {
	l    *pq.Listener
	wake chan struct{}
	done chan struct{}
}

// Listen subscribes to the change event channel.
func Listen(dsn string, minReconnect, maxReconnect time.Duration) (*Listener, error) {
	l := pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.WithError(err).WithField("event", ev).Warn("listener connection event")
		}
	})

	if err := l.Listen(Channel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("failed to listen %s: %w", Channel, err)
	}

	out := &Listener{
		l:    l,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	go out.loop()

	return out, nil
}

// loop collapses bursts of notifications into at most one pending wake-up.
// A nil notification means the connection was re-established and some notifications might be lost.
func (l *Listener) loop() {
	for {
		select {
		case <-l.done:
			return
		case _, ok := <-l.l.Notify:
			if !ok {
				return
			}

			select {
			case l.wake <- struct{}{}:
			default:
			}
		}
	}
}

// Wake ...
func (l *Listener) Wake() <-chan struct{} {
	return l.wake
}

// Close ...
func (l *Listener) Close() error {
	close(l.done)
	return l.l.Close()
}
