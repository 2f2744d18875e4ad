package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

var (
	timeMu  sync.Mutex
	lastMS  int64
	lastSeq int
)

// NewTimeID returns a display id like "TR-1736123456789". Ids are derived
// from the current epoch millisecond; a sequence suffix is appended when two
// ids land on the same millisecond so they never collide.
func NewTimeID(prefix string) string {
	timeMu.Lock()
	defer timeMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms == lastMS {
		lastSeq++
		return fmt.Sprintf("%s-%d-%d", prefix, ms, lastSeq)
	}
	lastMS, lastSeq = ms, 0
	return fmt.Sprintf("%s-%d", prefix, ms)
}
