package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/bizdash/internal/adapters/storage"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/observability/metrics"
	"github.com/SscSPs/bizdash/pkg/config"
	"github.com/SscSPs/bizdash/pkg/logger"
	"go.uber.org/zap"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// deps are the process-level collaborators of run, replaced in tests.
type deps struct {
	loadCfg   func() (*config.Config, error)
	openStore func(ctx context.Context, cfg *config.Config) (repositories.KeyValueStore, io.Closer, error)
	transport http.RoundTripper
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
}

func defaultDeps() deps {
	return deps{
		loadCfg:   config.LoadConfig,
		openStore: openStore,
		transport: http.DefaultTransport,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

// openStore opens the configured key-value backend, sealed when an encryption
// key is configured.
func openStore(ctx context.Context, cfg *config.Config) (repositories.KeyValueStore, io.Closer, error) {
	var (
		kv     repositories.KeyValueStore
		closer io.Closer = nopCloser{}
	)
	switch cfg.StorageBackend {
	case config.StorageRedis:
		rs, err := storage.DialRedis(ctx, cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open redis storage: %w", err)
		}
		kv, closer = rs, rs
	default:
		fs, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		kv = fs
	}

	if cfg.EncryptionKey != nil {
		sealed, err := storage.NewSealedStore(kv, cfg.EncryptionKey)
		if err != nil {
			_ = closer.Close()
			return nil, nil, fmt.Errorf("failed to enable storage encryption: %w", err)
		}
		kv = sealed
	}
	return kv, closer, nil
}

// run returns the process exit code.
func run(ctx context.Context, args []string, d deps) int {
	cfg, err := d.loadCfg()
	if err != nil {
		fmt.Fprintf(d.errOut, "failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.LogEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(d.errOut, "failed to initialise logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	kv, closer, err := d.openStore(ctx, cfg)
	if err != nil {
		log.Error("Failed to open storage", zap.Error(err))
		fmt.Fprintln(d.errOut, err)
		return 1
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			log.Warn("Failed to close storage", zap.Error(cerr))
		}
	}()

	if cfg.MetricsFile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
				log.Warn("Failed to write metrics file", zap.String("path", cfg.MetricsFile), zap.Error(werr))
			}
		}()
	}

	a, err := newApp(ctx, cfg, kv, d)
	if err != nil {
		log.Error("Failed to initialise application", zap.Error(err))
		fmt.Fprintln(d.errOut, err)
		return 1
	}

	if err := a.dispatch(ctx, args); err != nil {
		a.printError(err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], defaultDeps())
	stop()
	os.Exit(code)
}
