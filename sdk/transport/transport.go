package transport

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/metricsimple/metricsimple/sdk/internal/restmachinery"
)

// CorrelationIDHeader is stamped onto every outbound request.
const CorrelationIDHeader = "X-Correlation-Id"

// correlationIDTag prefixes every generated correlation id. The server's log
// pipeline matches on this shape; do not change it.
const correlationIDTag = "ui"

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewCorrelationID generates a practically collision-free request identifier
// of the form ui-<base36 timestamp>-<8 random base36 chars>. It is not
// cryptographically secure and is not required to be.
func NewCorrelationID() string {
	random := make([]byte, 8)
	for i := range random {
		random[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return fmt.Sprintf(
		"%s-%s-%s",
		correlationIDTag,
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		random,
	)
}

// correlationTransport unconditionally stamps every outbound request with a
// fresh correlation id.
type correlationTransport struct {
	next http.RoundTripper
}

func (c *correlationTransport) RoundTrip(
	req *http.Request,
) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set(CorrelationIDHeader, NewCorrelationID())
	return c.next.RoundTrip(out)
}

// requestEndpoint is the request URL stripped of query and fragment, suitable
// for exact comparison against a configured endpoint address.
func requestEndpoint(u *url.URL) string {
	stripped := *u
	stripped.RawQuery = ""
	stripped.ForceQuery = false
	stripped.Fragment = ""
	return stripped.String()
}

// authTransport conditionally attaches a bearer credential: only to requests
// targeting the configured API address (with or without its version suffix),
// never to exempt endpoints, and only when a token is available. A missing
// token passes through unmodified; the server answers 401 if it cares.
type authTransport struct {
	apiAddress  string
	authAddress string
	token       func() string
	next        http.RoundTripper
}

// isExemptEndpoint reports whether the request targets an endpoint that must
// never receive a bearer token: the credential exchange itself (a token there
// would be both useless and a stale-credential leak) or the health probe.
// Both live at the unversioned address and are matched exactly, so resource
// paths that merely end the same way are unaffected.
func (a *authTransport) isExemptEndpoint(u *url.URL) bool {
	endpoint := requestEndpoint(u)
	return endpoint == a.authAddress+"/auth/token" ||
		endpoint == a.authAddress+"/health"
}

func (a *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	address := req.URL.String()
	if !strings.HasPrefix(address, a.apiAddress) &&
		!strings.HasPrefix(address, a.authAddress) {
		return a.next.RoundTrip(req)
	}
	if a.isExemptEndpoint(req.URL) {
		return a.next.RoundTrip(req)
	}
	token := a.token()
	if token == "" {
		return a.next.RoundTrip(req)
	}
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	return a.next.RoundTrip(out)
}

// Notifier surfaces transient, user-facing notices raised by the session
// guard. Implementations must not log or display token material.
type Notifier interface {
	// SessionExpired is raised when the session has been invalidated and the
	// user must authenticate again.
	SessionExpired()
	// PermissionDenied is raised on an action-scoped authorization failure.
	// The session itself remains valid.
	PermissionDenied()
	// RateLimited is raised when the server is shedding load; the action is
	// worth retrying shortly.
	RateLimited()
}

type noopNotifier struct{}

func (noopNotifier) SessionExpired()   {}
func (noopNotifier) PermissionDenied() {}
func (noopNotifier) RateLimited()      {}

// sessionGuardTransport inspects failed responses on the way back. An
// unauthorized response to anything but the credential exchange ends the
// session; forbidden and rate-limited responses raise a notice without
// touching session state. The response always propagates so call sites can
// still react locally.
type sessionGuardTransport struct {
	loginEndpoint  string
	onUnauthorized func()
	notifier       Notifier
	next           http.RoundTripper
}

func (s *sessionGuardTransport) RoundTrip(
	req *http.Request,
) (*http.Response, error) {
	resp, err := s.next.RoundTrip(req)
	if err != nil || resp == nil {
		return resp, err
	}
	// A 401 from the credential exchange is just a failed login attempt;
	// reacting to it here would loop a logout into every bad password.
	if requestEndpoint(req.URL) == s.loginEndpoint {
		return resp, nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		glog.V(1).Info("session invalidated by unauthorized response")
		s.onUnauthorized()
		s.notifier.SessionExpired()
	case http.StatusForbidden:
		s.notifier.PermissionDenied()
	case http.StatusTooManyRequests:
		s.notifier.RateLimited()
	}
	return resp, nil
}

// Config assembles the client-side request pipeline.
type Config struct {
	// APIAddress is the versioned API address, e.g. http://host:8080/api/v1.
	APIAddress string
	// Token supplies the current access token, or "" when there is none.
	Token func() string
	// OnUnauthorized is invoked (once per offending response) when the
	// session has been invalidated. Typically SessionManager.Logout.
	OnUnauthorized func()
	// Notifier receives transient notices. Optional.
	Notifier Notifier
	// Base is the underlying transport. Defaults to http.DefaultTransport.
	Base http.RoundTripper
}

// New returns the composed pipeline: correlation stamping, then credential
// attachment on the way out; the session guard reacts first on the way back.
func New(cfg Config) http.RoundTripper {
	base := cfg.Base
	if base == nil {
		base = http.DefaultTransport
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = noopNotifier{}
	}
	onUnauthorized := cfg.OnUnauthorized
	if onUnauthorized == nil {
		onUnauthorized = func() {}
	}
	token := cfg.Token
	if token == nil {
		token = func() string { return "" }
	}
	authAddress := restmachinery.AuthAddress(cfg.APIAddress)
	var rt http.RoundTripper = &sessionGuardTransport{
		loginEndpoint:  authAddress + "/auth/token",
		onUnauthorized: onUnauthorized,
		notifier:       notifier,
		next:           base,
	}
	rt = &authTransport{
		apiAddress:  cfg.APIAddress,
		authAddress: authAddress,
		token:       token,
		next:        rt,
	}
	return &correlationTransport{next: rt}
}
