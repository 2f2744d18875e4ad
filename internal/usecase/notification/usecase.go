// Package notification owns the session's transient alerts and the
// watchlist. Both live outside the ledger store: notifications are
// user-dismissible, the audit trail is not.
package notification

import (
	"fmt"
	"sort"
	"sync"
	"time"

	domainAudit "github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	domainTrade "github.com/iamaanahmad/LoanLedger/internal/domain/trade"

	"github.com/google/uuid"
)

type Type string

const (
	TypeTrade      Type = "trade"
	TypePrice      Type = "price"
	TypeWatchlist  Type = "watchlist"
	TypeCompliance Type = "compliance"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	LoanID    string    `json:"loan_id,omitempty"`
}

type Usecase struct {
	mu            sync.RWMutex
	notifications []Notification
	watchlist     map[string]struct{}
}

// NewUsecase starts from the given seed notifications (newest first) and
// watched loan ids.
func NewUsecase(seeded []Notification, watched []string) *Usecase {
	u := &Usecase{watchlist: make(map[string]struct{}, len(watched))}
	u.notifications = append(u.notifications, seeded...)
	for _, id := range watched {
		u.watchlist[id] = struct{}{}
	}
	return u
}

// Append inserts at the head, newest first.
func (u *Usecase) Append(n Notification) {
	u.mu.Lock()
	u.notifications = append([]Notification{n}, u.notifications...)
	u.mu.Unlock()
}

// MarkRead is idempotent; unknown ids are a no-op.
func (u *Usecase) MarkRead(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.notifications {
		if u.notifications[i].ID == id {
			u.notifications[i].Read = true
			return
		}
	}
}

func (u *Usecase) ClearAll() {
	u.mu.Lock()
	u.notifications = nil
	u.mu.Unlock()
}

// List returns a snapshot copy, newest first.
func (u *Usecase) List() []Notification {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]Notification, len(u.notifications))
	copy(out, u.notifications)
	return out
}

// UnreadCount is recomputed on every call, never cached.
func (u *Usecase) UnreadCount() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	n := 0
	for _, notif := range u.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// ToggleWatch adds the loan if absent, removes it if present, and reports
// the resulting membership.
func (u *Usecase) ToggleWatch(loanID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.watchlist[loanID]; ok {
		delete(u.watchlist, loanID)
		return false
	}
	u.watchlist[loanID] = struct{}{}
	return true
}

func (u *Usecase) IsWatched(loanID string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	_, ok := u.watchlist[loanID]
	return ok
}

func (u *Usecase) ListWatchlist() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]string, 0, len(u.watchlist))
	for id := range u.watchlist {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// HandleTradeComplete is wired as a trading completion listener: when a
// watched loan trades, the session gets a watchlist alert.
func (u *Usecase) HandleTradeComplete(t *domainTrade.Trade, _ *domainAudit.Entry) {
	if !u.IsWatched(t.LoanID) {
		return
	}
	u.Append(Notification{
		ID:        "n-" + uuid.NewString(),
		Type:      TypeWatchlist,
		Title:     "Watched Loan Traded",
		Message:   fmt.Sprintf("%s loan was traded to %s", t.LoanBorrower, t.Buyer),
		Timestamp: time.Now().UTC(),
		LoanID:    t.LoanID,
	})
}

// SeedNotifications are the alerts a fresh session starts with.
func SeedNotifications(now time.Time) []Notification {
	return []Notification{
		{ID: "n1", Type: TypeTrade, Title: "Trade Executed", Message: "BlackRock purchased $50M of Meridian Energy loan", Timestamp: now.Add(-5 * time.Minute), LoanID: "LN-001"},
		{ID: "n2", Type: TypeCompliance, Title: "Compliance Alert", Message: "GreenBuild Construction flagged for elevated risk", Timestamp: now.Add(-30 * time.Minute), LoanID: "LN-006"},
		{ID: "n3", Type: TypePrice, Title: "Price Update", Message: "Atlas Manufacturing loan price updated to 98.50", Timestamp: now.Add(-time.Hour), Read: true, LoanID: "LN-003"},
	}
}
