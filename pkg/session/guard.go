package session

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// State classifies a session by idle time. Warning fires five minutes
// before expiry so clients can prompt the user to stay signed in.
type State string

const (
	StateActive  State = "active"
	StateWarning State = "warning"
	StateExpired State = "expired"
)

const (
	IdleTimeout     = 30 * time.Minute
	WarningLeadTime = 5 * time.Minute
)

// Guard tracks per-user activity timestamps in memory. It is independent
// of token validity: a JWT can still be cryptographically valid while the
// guard reports the session idle-expired.
type Guard struct {
	cache       *cache.Cache
	idleTimeout time.Duration
	warningLead time.Duration
	now         func() time.Time
}

func NewGuard() *Guard {
	// Entries live slightly past the idle timeout so Status can still
	// report "expired" instead of treating a stale session as unknown.
	c := cache.New(IdleTimeout+10*time.Minute, 10*time.Minute)
	return &Guard{
		cache:       c,
		idleTimeout: IdleTimeout,
		warningLead: WarningLeadTime,
		now:         time.Now,
	}
}

// Touch records activity for the user, resetting the idle clock.
func (g *Guard) Touch(userId string) {
	g.cache.Set(userId, g.now(), cache.DefaultExpiration)
}

// Status reports the session state and the moment it will idle-expire.
// A user the guard has never seen is treated as expired.
func (g *Guard) Status(userId string) (State, time.Time, time.Time) {
	x, found := g.cache.Get(userId)
	if !found {
		return StateExpired, time.Time{}, time.Time{}
	}

	lastActive := x.(time.Time)
	expiresAt := lastActive.Add(g.idleTimeout)
	idle := g.now().Sub(lastActive)

	switch {
	case idle >= g.idleTimeout:
		return StateExpired, lastActive, expiresAt
	case idle >= g.idleTimeout-g.warningLead:
		return StateWarning, lastActive, expiresAt
	default:
		return StateActive, lastActive, expiresAt
	}
}

// Revoke drops the activity record, forcing expired on the next check.
func (g *Guard) Revoke(userId string) {
	g.cache.Delete(userId)
}
