package session

import (
	"testing"
	"time"
)

func TestGuardStates(t *testing.T) {
	now := time.Now()
	g := NewGuard()
	g.now = func() time.Time { return now }

	userId := "user-1"
	g.Touch(userId)

	tests := []struct {
		name string
		idle time.Duration
		want State
	}{
		{"fresh activity", 0, StateActive},
		{"just under warning", 24 * time.Minute, StateActive},
		{"inside warning window", 26 * time.Minute, StateWarning},
		{"at warning boundary", 25 * time.Minute, StateWarning},
		{"at expiry", 30 * time.Minute, StateExpired},
		{"long expired", 2 * time.Hour, StateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.now = func() time.Time { return now.Add(tt.idle) }
			state, lastActive, expiresAt := g.Status(userId)
			if state != tt.want {
				t.Errorf("state = %q, want %q", state, tt.want)
			}
			if !lastActive.Equal(now) {
				t.Errorf("lastActive = %v, want %v", lastActive, now)
			}
			if !expiresAt.Equal(now.Add(IdleTimeout)) {
				t.Errorf("expiresAt = %v, want %v", expiresAt, now.Add(IdleTimeout))
			}
		})
	}
}

func TestGuardTouchResetsIdleClock(t *testing.T) {
	now := time.Now()
	g := NewGuard()
	g.now = func() time.Time { return now }

	g.Touch("user-1")

	// 29 minutes later the session is about to expire; activity resets it.
	g.now = func() time.Time { return now.Add(29 * time.Minute) }
	g.Touch("user-1")

	g.now = func() time.Time { return now.Add(40 * time.Minute) }
	state, _, _ := g.Status("user-1")
	if state != StateActive {
		t.Errorf("state = %q, want active after touch", state)
	}
}

func TestGuardUnknownUserIsExpired(t *testing.T) {
	g := NewGuard()
	state, _, _ := g.Status("never-seen")
	if state != StateExpired {
		t.Errorf("state = %q, want expired", state)
	}
}

func TestGuardRevoke(t *testing.T) {
	g := NewGuard()
	g.Touch("user-1")
	g.Revoke("user-1")
	state, _, _ := g.Status("user-1")
	if state != StateExpired {
		t.Errorf("state = %q, want expired after revoke", state)
	}
}
