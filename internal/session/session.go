// Package session tracks chats that issued /start and are expected to reply
// with registration parameters instead of a command.
package session

import "sync"

// Onboarding is the set of chats currently mid-registration. It is separate
// from the subscription store: a subscribed user may re-enter onboarding, and
// the old subscription survives until new parameters validate.
type Onboarding struct {
	mu       sync.RWMutex
	awaiting map[int64]struct{}
}

// New creates an empty onboarding set.
func New() *Onboarding {
	return &Onboarding{awaiting: make(map[int64]struct{})}
}

// Begin marks a chat as awaiting registration input. Idempotent.
func (o *Onboarding) Begin(chatID int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.awaiting[chatID] = struct{}{}
}

// IsAwaiting reports whether the chat is mid-registration.
func (o *Onboarding) IsAwaiting(chatID int64) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.awaiting[chatID]
	return ok
}

// Complete removes the chat from the awaiting set. Called only after the
// registration input validated; a failed attempt keeps the chat here so it
// can retry.
func (o *Onboarding) Complete(chatID int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.awaiting, chatID)
}
