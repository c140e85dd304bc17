package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// AuthObserver watches the stored credential and tells the listener about
// guest/authenticated transitions, once per change. Explicit Check calls from
// the login and logout call sites are the primary signal; the poll loop only
// catches changes made by another process sharing the storage.
type AuthObserver struct {
	credentials repository.CredentialRepository
	inspector   service.CredentialInspector
	listener    usecase.SessionListener
	interval    time.Duration
	logger      *slog.Logger

	// checkMu serializes observe-and-compare so concurrent checks cannot both see the same change.
	checkMu sync.Mutex

	mu      sync.RWMutex
	current entity.AuthSession
	gen     uint64

	stopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAuthObserver is the constructor for AuthObserver.
func NewAuthObserver(
	credentials repository.CredentialRepository,
	inspector service.CredentialInspector,
	listener usecase.SessionListener,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthObserver {
	interval := 5 * time.Second
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PollInterval > 0 {
		interval = cfg.Auth.PollInterval
	}

	return &AuthObserver{
		credentials: credentials,
		inspector:   inspector,
		listener:    listener,
		interval:    interval,
		logger:      logger,
	}
}

var _ usecase.SessionObserver = (*AuthObserver)(nil)

func (o *AuthObserver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, o.logger)
}

// Start records the baseline session without dispatching and starts the poll loop.
func (o *AuthObserver) Start(ctx context.Context) entity.AuthSession {
	o.checkMu.Lock()
	session, ok := o.observe(ctx)
	o.mu.Lock()
	if ok {
		o.current = session
	}
	session = o.current
	o.mu.Unlock()
	o.checkMu.Unlock()

	o.stopMu.Lock()
	defer o.stopMu.Unlock()

	if o.cancel == nil {
		// The poll loop outlives the start hook's context.
		pollCtx, cancel := context.WithCancel(context.Background())
		o.cancel = cancel
		o.done = make(chan struct{})
		go o.poll(pollCtx, o.done)
	}

	o.log(ctx).Info("Auth observer started",
		slog.Bool("authenticated", session.Authenticated),
		slog.Duration("poll_interval", o.interval),
	)

	return session
}

// Stop ends the poll loop and waits for it to exit.
func (o *AuthObserver) Stop() {
	o.stopMu.Lock()
	cancel, done := o.cancel, o.done
	o.cancel, o.done = nil, nil
	o.stopMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Current returns the last observed session without touching storage.
func (o *AuthObserver) Current() entity.AuthSession {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.current
}

// Check re-reads the stored credential and dispatches a transition if the state changed.
func (o *AuthObserver) Check(ctx context.Context) (entity.AuthSession, error) {
	o.checkMu.Lock()
	next, ok := o.observe(ctx)
	o.mu.Lock()
	if !ok {
		next = o.current
		o.mu.Unlock()
		o.checkMu.Unlock()

		return next, nil
	}
	prev := o.current
	o.current = next
	changed := !prev.SameLogin(next)
	if changed {
		o.gen++
	}
	gen := o.gen
	o.mu.Unlock()
	o.checkMu.Unlock()

	if !changed {
		return next, nil
	}

	return next, o.dispatch(ctx, prev, next, gen)
}

// dispatch runs outside the check lock so a logout is never queued behind a
// slow login sync. gen travels with the notification so the listener can drop
// one that lost a race against a newer transition.
func (o *AuthObserver) dispatch(ctx context.Context, prev, next entity.AuthSession, gen uint64) error {
	logger := o.log(ctx).With(slog.Uint64("transition", gen))

	o.mu.RLock()
	superseded := o.gen != gen
	o.mu.RUnlock()
	if superseded {
		logger.Debug("Skipping session dispatch superseded by a newer transition")

		return nil
	}

	if !next.Authenticated {
		logger.Info("Session ended")
		o.listener.OnLogout(ctx, gen)

		return nil
	}

	if prev.Authenticated {
		logger.Info("Credential replaced, treating as a new login")
	} else {
		logger.Info("Session started")
	}

	return o.listener.OnLogin(ctx, gen)
}

// observe reads the credential and derives the session. ok is false when
// storage could not be read, in which case the previous state is kept.
func (o *AuthObserver) observe(ctx context.Context) (session entity.AuthSession, ok bool) {
	credential, err := o.credentials.Load(ctx)
	if err != nil {
		o.log(ctx).Warn("Failed to read stored credential", slog.Any("error", err))

		return entity.AuthSession{}, false
	}
	if credential == nil || credential.AccessToken == "" {
		return entity.AuthSession{}, true
	}

	info, err := o.inspector.Inspect(credential.AccessToken)
	if err != nil {
		o.log(ctx).Debug("Stored credential is not usable", slog.Any("error", err))

		return entity.AuthSession{}, true
	}

	session = entity.AuthSession{
		Authenticated: true,
		Fingerprint:   o.inspector.Fingerprint(credential.AccessToken),
		Profile:       credential.Profile,
		ExpiresAt:     info.ExpiresAt,
	}
	if session.Profile == nil && info.Subject != "" {
		session.Profile = &entity.UserProfile{
			ID:    entity.ID(info.Subject),
			Email: info.Email,
			Roles: info.Roles,
		}
	}

	return session, true
}

func (o *AuthObserver) poll(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := o.Check(ctx); err != nil {
				o.logger.Warn("Session transition handling failed", slog.Any("error", err))
			}
		}
	}
}
