package summarizer

import "time"

type retryState int

const (
	stateIdle retryState = iota
	stateAttempt1
	stateRetryPending
	stateAttempt2
	stateDone
)

func (s retryState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateAttempt1:
		return "attempt1"
	case stateRetryPending:
		return "retry_pending"
	case stateAttempt2:
		return "attempt2"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// retryCoordinator drives at most two attempts of the same request:
//
//	idle -> attempt1 -> done
//	             \-> retry_pending -> attempt2 -> done
//
// attempt2 is terminal whatever it returns.
type retryCoordinator struct {
	delay time.Duration
	sleep func(time.Duration)
	// onRetry, when set, observes the failed first outcome before the delay.
	onRetry func(AttemptOutcome)
}

func newRetryCoordinator(delay time.Duration) retryCoordinator {
	return retryCoordinator{delay: delay, sleep: time.Sleep}
}

// run returns the terminal outcome and the number of attempts made.
func (c retryCoordinator) run(attempt func() AttemptOutcome) (AttemptOutcome, int) {
	var (
		state    = stateIdle
		outcome  AttemptOutcome
		attempts int
	)
	for state != stateDone {
		switch state {
		case stateIdle:
			state = stateAttempt1
		case stateAttempt1:
			outcome = attempt()
			attempts++
			if outcome.Succeeded() {
				state = stateDone
			} else {
				state = stateRetryPending
			}
		case stateRetryPending:
			if c.onRetry != nil {
				c.onRetry(outcome)
			}
			if c.delay > 0 && c.sleep != nil {
				c.sleep(c.delay)
			}
			state = stateAttempt2
		case stateAttempt2:
			outcome = attempt()
			attempts++
			state = stateDone
		}
	}
	return outcome, attempts
}
