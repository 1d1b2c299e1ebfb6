package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/bizdash/internal/adapters/api"
	"github.com/SscSPs/bizdash/internal/adapters/storage"
	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/core/services"
	"github.com/SscSPs/bizdash/internal/i18n"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/SscSPs/bizdash/internal/observability/metrics"
	"github.com/SscSPs/bizdash/pkg/config"
	"github.com/SscSPs/bizdash/pkg/logger"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

// usageError reports a malformed command line together with its usage text.
type usageError struct{ usage string }

func (e usageError) Error() string { return "usage: " + e.usage }
func (e usageError) Unwrap() error { return errUsage }

type app struct {
	cfg     *config.Config
	svc     *portssvc.ServiceContainer
	locator *services.BusinessLocator
	locale  *i18n.Manager
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer

	endOnce      sync.Once
	sessionEnded atomic.Bool
}

func newApp(ctx context.Context, cfg *config.Config, kv repositories.KeyValueStore, d deps) (*app, error) {
	tr, err := i18n.NewTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	a := &app{cfg: cfg, in: bufio.NewReader(d.in), out: d.out, errOut: d.errOut}
	a.locale = i18n.NewManager(ctx, kv, tr, terminalEffects{out: d.out})

	tokens := storage.NewTokenStore(kv)
	chain := []middleware.Middleware{
		middleware.RequestID(),
		middleware.StructuredLogging(logger.Base()),
		metrics.Transport(),
	}
	if cfg.APIRateLimit != "" {
		l, err := middleware.NewLimiter(cfg.APIRateLimit)
		if err != nil {
			return nil, fmt.Errorf("invalid API_RATE_LIMIT %q: %w", cfg.APIRateLimit, err)
		}
		chain = append(chain, middleware.RateLimit(l))
	}

	public := &http.Client{Timeout: cfg.RequestTimeout, Transport: middleware.Chain(d.transport, chain...)}
	session := &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: middleware.Chain(d.transport, append(chain, middleware.BearerAuth(tokens, a.endSession))...),
	}
	publicClient := api.NewClient(cfg.APIBaseURL, public)
	sessionClient := api.NewClient(cfg.APIBaseURL, session)

	a.svc = services.NewServiceContainer(repositories.RepositoryProvider{
		AuthRepo:      api.NewAuthRepository(publicClient, tokens),
		BusinessRepo:  api.NewBusinessRepository(sessionClient),
		ClientRepo:    api.NewClientRepository(sessionClient),
		AdminRepo:     api.NewAdminRepository(sessionClient),
		PaymentRepo:   api.NewPaymentRepository(sessionClient),
		KnowledgeRepo: api.NewKnowledgeRepository(sessionClient),
		DashboardRepo: api.NewDashboardRepository(sessionClient),
		Tokens:        tokens,
		KeyValue:      kv,
	})
	a.locator = services.NewBusinessLocator(a.svc.Business, cfg.WizardSettleDelay)
	return a, nil
}

// endSession is the terminal side of a 401: tokens are already gone, the user
// is sent back to login.
func (a *app) endSession(ctx context.Context) {
	a.endOnce.Do(func() {
		a.sessionEnded.Store(true)
		logger.WithContext(ctx).Info("Session ended, login required")
		fmt.Fprintln(a.errOut, a.t("messages.sessionExpired", "Your session has expired. Please log in again."))
		fmt.Fprintln(a.errOut, "Run: bizdash login")
	})
}

func (a *app) t(key, fallback string) string { return a.locale.T(key, fallback) }

// printError renders err for the terminal.
func (a *app) printError(err error) {
	var (
		usage   usageError
		partial *apperrors.PartialSubmissionError
		invalid *apperrors.ValidationError
	)
	switch {
	case errors.As(err, &usage):
		fmt.Fprintln(a.errOut, err.Error())
	case errors.As(err, &partial):
		fmt.Fprintf(a.errOut, "%s: %d created, %d failed\n",
			a.t("messages.partialSubmission", "Some records could not be created"), partial.Succeeded, partial.Failed)
		if remote, ok := apperrors.AsRemote(partial.Cause); ok {
			fmt.Fprintln(a.errOut, remote.Message(a.t("messages.saveFailed", "")))
		} else if partial.Cause != nil {
			fmt.Fprintln(a.errOut, partial.Cause.Error())
		}
	case errors.As(err, &invalid):
		fmt.Fprintf(a.errOut, "%s %s\n", invalid.Field, invalid.Reason)
	case errors.Is(err, apperrors.ErrAdminCapacity):
		fmt.Fprintf(a.errOut, "%s (%v)\n", a.t("messages.adminLimitReached", ""), err)
	case errors.Is(err, apperrors.ErrUnauthorized):
		if !a.sessionEnded.Load() {
			fmt.Fprintln(a.errOut, a.remoteMessage(err))
		}
	default:
		if _, ok := apperrors.AsRemote(err); ok {
			fmt.Fprintln(a.errOut, a.remoteMessage(err))
			return
		}
		fmt.Fprintln(a.errOut, err.Error())
	}
}

func (a *app) remoteMessage(err error) string {
	remote, ok := apperrors.AsRemote(err)
	if !ok {
		return err.Error()
	}
	return remote.Message(a.t("messages.saveFailed", "Failed to save. Please try again."))
}

// terminalEffects applies locale changes to the terminal session.
type terminalEffects struct {
	out io.Writer
}

func (terminalEffects) Apply(l i18n.Locale) {
	logger.Base().Debug("Locale applied",
		zap.String("lang", string(l)),
		zap.String("dir", l.Dir()),
		zap.String("font", l.FontClass()))
}

// Announce prints msg; d is only logged.
func (e terminalEffects) Announce(msg string, d time.Duration) {
	fmt.Fprintln(e.out, msg)
	logger.Base().Debug("Announcement shown", zap.String("message", msg), zap.Duration("for", d))
}
