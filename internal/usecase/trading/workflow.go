package trading

import (
	"context"
	"sync"

	"github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	"github.com/iamaanahmad/LoanLedger/internal/domain/trade"
)

type State string

const (
	// StateDetails is the initial state while input is being validated.
	StateDetails State = "details"
	// StateConfirming covers the simulated settlement delay.
	StateConfirming State = "confirming"
	StateComplete   State = "complete"
	// StateFailed means the commit was rejected (the loan was no longer
	// available). Distinct from complete on purpose.
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

// Workflow is one trade attempt. It is created in StateDetails, moves to
// StateConfirming once input passes validation, and lands in exactly one of
// the terminal states.
type Workflow struct {
	ID     string
	LoanID string

	mu    sync.RWMutex
	state State
	err   error
	trade *trade.Trade
	entry *audit.Entry
	done  chan struct{}
}

func newWorkflow(id, loanID string) *Workflow {
	return &Workflow{ID: id, LoanID: loanID, state: StateDetails, done: make(chan struct{})}
}

func (w *Workflow) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Err returns the terminal error, nil unless the workflow failed.
func (w *Workflow) Err() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.err
}

// Result returns the committed trade and audit entry; both nil unless the
// workflow completed.
func (w *Workflow) Result() (*trade.Trade, *audit.Entry) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.trade, w.entry
}

// Wait blocks until the workflow reaches a terminal state or ctx is done.
// It returns the workflow's terminal error, if any.
func (w *Workflow) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.done:
		return w.Err()
	}
}

func (w *Workflow) setConfirming() {
	w.mu.Lock()
	w.state = StateConfirming
	w.mu.Unlock()
}

func (w *Workflow) finish(s State, t *trade.Trade, e *audit.Entry, err error) {
	w.mu.Lock()
	w.state, w.trade, w.entry, w.err = s, t, e, err
	w.mu.Unlock()
	close(w.done)
}
