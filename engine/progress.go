package engine

// ProgressObserver receives search lifecycle and progress notifications.
//
// Callbacks are invoked from the search goroutine and must not block;
// a slow observer stalls the search. Wrap blocking consumers in an
// AsyncObserver.
type ProgressObserver interface {
	// OnStatus is called on every lifecycle transition.
	OnStatus(status LifecycleStatus)

	// OnProgress reports the current open and closed node counts, summed
	// over both directions, at most once per configured report interval.
	OnProgress(open, closed int64)

	// OnFinished is the single final notification. reason is also
	// retrievable from the engine afterwards.
	OnFinished(success bool, reason ExitReason)
}

// NoopProgressObserver discards all notifications.
type NoopProgressObserver struct{}

func (NoopProgressObserver) OnStatus(LifecycleStatus)    {}
func (NoopProgressObserver) OnProgress(int64, int64)     {}
func (NoopProgressObserver) OnFinished(bool, ExitReason) {}

// Event is a single observer notification, delivered by AsyncObserver.
type Event struct {
	// Kind discriminates the payload.
	Kind EventKind

	Status       LifecycleStatus
	Open, Closed int64
	Success      bool
	Reason       ExitReason
}

// EventKind discriminates Event payloads.
type EventKind int

const (
	// EventStatus is a lifecycle transition.
	EventStatus EventKind = iota
	// EventProgress is a periodic progress report.
	EventProgress
	// EventFinished is the final notification.
	EventFinished
)

// AsyncObserver decouples a consumer from the search goroutine: events are
// delivered on a buffered channel and dropped when the buffer is full, so
// the engine never blocks on a slow listener. Progress events are the only
// ones that may be dropped; status and finish events are retried against a
// full buffer by evicting the oldest pending event.
type AsyncObserver struct {
	ch chan Event
}

// NewAsyncObserver creates an AsyncObserver with the given buffer size.
func NewAsyncObserver(buffer int) *AsyncObserver {
	if buffer <= 0 {
		buffer = 64
	}
	return &AsyncObserver{ch: make(chan Event, buffer)}
}

// Events returns the notification channel. The channel is closed after the
// EventFinished event has been delivered.
func (a *AsyncObserver) Events() <-chan Event { return a.ch }

func (a *AsyncObserver) OnStatus(status LifecycleStatus) {
	a.deliver(Event{Kind: EventStatus, Status: status})
}

func (a *AsyncObserver) OnProgress(open, closed int64) {
	select {
	case a.ch <- Event{Kind: EventProgress, Open: open, Closed: closed}:
	default:
		// Drop progress rather than stall the search.
	}
}

func (a *AsyncObserver) OnFinished(success bool, reason ExitReason) {
	a.deliver(Event{Kind: EventFinished, Success: success, Reason: reason})
	close(a.ch)
}

func (a *AsyncObserver) deliver(e Event) {
	for {
		select {
		case a.ch <- e:
			return
		default:
		}
		// Buffer full: evict the oldest pending event and retry.
		select {
		case <-a.ch:
		default:
		}
	}
}
