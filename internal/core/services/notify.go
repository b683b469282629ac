package services

// notifier coalesces change signals for a single observer.
// Notify never blocks: when a signal is already pending the new one
// folds into it, so a slow reader sees at least one signal for any
// burst of changes.
type notifier struct {
	ch chan struct{}
}

func newNotifier() *notifier {
	return &notifier{ch: make(chan struct{}, 1)}
}

// Notify signals a state change.
func (n *notifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// C returns the signal channel.
func (n *notifier) C() <-chan struct{} {
	return n.ch
}
