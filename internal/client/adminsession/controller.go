// Package adminsession holds the client-side admin auth state for one UI
// tab: a three-state machine fed by the remote session check, with an
// ephemeral local hint that only speeds up the first paint.
package adminsession

import (
	"context"
	"sync"

	"github.com/labstack/gommon/log"
)

type State int

const (
	// StateUnknown: before the first session check resolves.
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Identity is the authenticated admin, as reported by the remote check.
type Identity struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

// Controller is the single writer of admin auth state. Consumers read
// snapshots; all transitions go through Refresh and Logout.
type Controller struct {
	api    API
	hints  HintStore
	logger *log.Logger

	mu       sync.Mutex
	state    State
	identity *Identity
	loading  bool
	seeded   bool   // optimistic hint found at construction
	gen      uint64 // invalidates in-flight checks

	signedOut chan struct{}
}

func New(api API, hints HintStore) *Controller {
	c := &Controller{
		api:       api,
		hints:     hints,
		logger:    log.New("adminsession"),
		state:     StateUnknown,
		signedOut: make(chan struct{}, 1),
	}

	// Seed the optimistic hint. UI responsiveness only; the remote check
	// overrides it as soon as it resolves.
	if v, ok := hints.Get(HintAuthenticatedKey); ok && v == "true" {
		c.seeded = true
	}

	return c
}

// State returns the current logical state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsAuthenticated is the view the UI binds to. While the first check is
// unresolved it reflects the local hint.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateUnknown {
		return c.seeded
	}
	return c.state == StateAuthenticated
}

func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// CurrentAdmin returns a copy of the authenticated identity, or nil.
func (c *Controller) CurrentAdmin() *Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.identity == nil {
		return nil
	}
	id := *c.identity
	return &id
}

// SignedOut delivers one notification per completed logout. The caller
// owns navigation to the login surface; the controller never redirects.
func (c *Controller) SignedOut() <-chan struct{} {
	return c.signedOut
}

// Refresh runs the remote session check and applies the result. Callers
// invoke it once at mount and again whenever the window regains focus.
// A transport failure is returned as-is and leaves the state untouched;
// there is no automatic retry. A response that raced a Logout or a newer
// Refresh is discarded.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.mu.Unlock()

	result, err := c.api.CheckSession(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Stale response; a logout or newer check already won.
		return nil
	}
	c.loading = false

	if err != nil {
		return err
	}

	if result == nil || !result.Authenticated || !result.IsAdmin {
		c.identity = nil
		c.state = StateUnauthenticated
		c.seeded = false
		c.hints.Delete(HintAuthenticatedKey)
		c.hints.Delete(HintSessionIDKey)
		return nil
	}

	c.identity = &Identity{
		UserID:   result.UserID,
		Username: result.Username,
		IsAdmin:  result.IsAdmin,
	}
	c.state = StateAuthenticated
	c.hints.Set(HintAuthenticatedKey, "true")
	return nil
}

// Logout ends the session client-side no matter what the server says.
// The remote call failing is logged and otherwise ignored: the user must
// never be left looking authenticated because a logout request dropped.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	// Invalidate any in-flight check before the remote call so a late
	// response cannot resurrect the session.
	c.gen++
	c.mu.Unlock()

	if err := c.api.Logout(ctx); err != nil {
		c.logger.Errorf("remote logout failed: %v", err)
	}

	c.mu.Lock()
	c.identity = nil
	c.state = StateUnauthenticated
	c.seeded = false
	c.loading = false
	c.hints.Delete(HintAuthenticatedKey)
	c.hints.Delete(HintSessionIDKey)
	c.mu.Unlock()

	select {
	case c.signedOut <- struct{}{}:
	default:
	}
}
