package authx

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
	"golang.org/x/oauth2"
)

// TokenGrant is the API server's response to a successful credential
// exchange.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// SessionService abstracts the two auth endpoints the SessionManager talks
// to. sdk/authx/api provides the real implementation.
type SessionService interface {
	// CreateSession exchanges credentials for a token grant.
	CreateSession(
		ctx context.Context,
		username string,
		password string,
	) (TokenGrant, error)
	// WhoAmI resolves the current principal using the stored token.
	WhoAmI(ctx context.Context) (*User, error)
}

// SessionState is a snapshot of the observable session facets.
type SessionState struct {
	Authenticated bool
	User          *User
}

// SessionManager owns the client-side session: it orchestrates login and
// logout against a SessionService, keeps the token store and the in-memory
// state in agreement, and lets any number of subscribers observe state
// changes without polling. It is the only component that mutates session
// state; everything else treats it as read-only.
type SessionManager struct {
	mu       sync.RWMutex
	store    TokenStore
	sessions SessionService
	user     *User
	authed   bool

	watchersMu  sync.Mutex
	watchers    map[int]chan SessionState
	nextWatcher int

	now func() time.Time
}

// NewSessionManager returns a SessionManager initialized from whatever the
// given store already holds: a stored token with a resolvable user (cached,
// or decoded from the token's claims) yields an authenticated session. A
// stored token whose user cannot be resolved is purged, so that the presence
// of a token always implies an authenticated state and vice versa.
func NewSessionManager(
	store TokenStore,
	sessions SessionService,
) *SessionManager {
	s := &SessionManager{
		store:    store,
		sessions: sessions,
		watchers: map[int]chan SessionState{},
		now:      time.Now,
	}
	s.initialize()
	return s
}

func (s *SessionManager) initialize() {
	token := s.store.Token()
	if token == "" {
		return
	}
	user := s.store.User()
	if user == nil {
		var err error
		if user, err = UserFromToken(token); err != nil {
			// A token we cannot resolve a user from is not a usable session.
			// Discard it so stored state and session state agree.
			glog.V(1).Info("discarding stored token with undecodable claims")
			_ = s.store.ClearToken()
			_ = s.store.ClearUser()
			return
		}
		// Best-effort; an uncached user is re-derived next time.
		_ = s.store.SaveUser(user) // nolint: errcheck
	}
	s.mu.Lock()
	s.user = user
	s.authed = true
	s.mu.Unlock()
}

// Login exchanges the given credentials for a session. On success the token
// is persisted, the user is resolved via the whoami endpoint -- falling back
// to decoding the token's claims on ANY whoami failure -- and the session
// becomes authenticated. On failure no state changes and the error
// propagates for presentation.
func (s *SessionManager) Login(
	ctx context.Context,
	username string,
	password string,
) (Session, error) {
	grant, err := s.sessions.CreateSession(ctx, username, password)
	if err != nil {
		return Session{}, err
	}
	if err := s.store.SaveToken(grant.AccessToken); err != nil {
		return Session{}, err
	}
	expiry := s.now().Add(time.Duration(grant.ExpiresIn) * time.Second)

	user, err := s.sessions.WhoAmI(ctx)
	if err != nil {
		glog.V(2).Infof("whoami failed; falling back to token claims: %s", err)
		// The fallback is unconditional on failure, not status-specific.
		user, _ = UserFromToken(grant.AccessToken) // nolint: errcheck
	}
	// A whoami failure may have tripped the response-side session guard,
	// which clears the just-saved token. The claims fallback keeps this
	// login alive, so restore the token before the state flips; the session
	// must never be authenticated with an empty store.
	if s.store.Token() == "" {
		if err := s.store.SaveToken(grant.AccessToken); err != nil {
			return Session{}, err
		}
	}
	if user != nil {
		// Cached user is best-effort only.
		_ = s.store.SaveUser(user) // nolint: errcheck
	}

	s.mu.Lock()
	s.user = user
	s.authed = true
	s.mu.Unlock()
	s.notify()

	return Session{
		Token: &oauth2.Token{
			AccessToken: grant.AccessToken,
			TokenType:   "Bearer",
			Expiry:      expiry,
		},
		User: user,
	}, nil
}

// Logout clears the stored token and cached user and resets session state.
// It is synchronous and cannot fail.
func (s *SessionManager) Logout() {
	_ = s.store.ClearToken() // nolint: errcheck
	_ = s.store.ClearUser()  // nolint: errcheck
	s.mu.Lock()
	s.user = nil
	s.authed = false
	s.mu.Unlock()
	s.notify()
}

// IsAuthenticated returns whether a session is currently established. It is
// a synchronous check against current state; no network round-trip occurs.
func (s *SessionManager) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// CurrentUser returns the current user, or nil when unauthenticated.
func (s *SessionManager) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// HasRole returns whether the current user holds the given role. It is false
// whenever there is no current user.
func (s *SessionManager) HasRole(role Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.HasRole(role)
}

// AccessToken is a synchronous passthrough to the token store, for use by
// the credential-attachment transport.
func (s *SessionManager) AccessToken() string {
	return s.store.Token()
}

// Watch registers a subscriber. The returned channel immediately yields the
// current state and then the latest state after every change; intermediate
// states may be skipped if the subscriber lags. The returned function
// cancels the subscription.
func (s *SessionManager) Watch() (<-chan SessionState, func()) {
	ch := make(chan SessionState, 1)
	ch <- s.snapshot()
	s.watchersMu.Lock()
	id := s.nextWatcher
	s.nextWatcher++
	s.watchers[id] = ch
	s.watchersMu.Unlock()
	cancel := func() {
		s.watchersMu.Lock()
		defer s.watchersMu.Unlock()
		if watcher, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(watcher)
		}
	}
	return ch, cancel
}

func (s *SessionManager) snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionState{Authenticated: s.authed, User: s.user}
}

func (s *SessionManager) notify() {
	state := s.snapshot()
	s.watchersMu.Lock()
	defer s.watchersMu.Unlock()
	for _, watcher := range s.watchers {
		// Replace any undelivered state so subscribers always see the latest.
		select {
		case <-watcher:
		default:
		}
		select {
		case watcher <- state:
		default:
		}
	}
}
