package i18n

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/pkg/logger"
	"go.uber.org/zap"
)

// StorageKey is the key-value entry holding the chosen locale.
const StorageKey = "locale"

// AnnouncementDuration is how long a locale change announcement stays visible.
const AnnouncementDuration = time.Second

// Effects applies a locale to the presentation surface: document language,
// direction and font class, plus a transient announcement.
type Effects interface {
	Apply(l Locale)
	Announce(msg string, d time.Duration)
}

// Manager owns the active locale.
type Manager struct {
	mu      sync.RWMutex
	locale  Locale
	kv      repositories.KeyValueStore
	tr      *Translator
	effects Effects
}

// NewManager reads the persisted locale once. Missing or unsupported values
// select English. The loaded locale is applied to effects without an announcement.
func NewManager(ctx context.Context, kv repositories.KeyValueStore, tr *Translator, effects Effects) *Manager {
	m := &Manager{locale: DefaultLocale, kv: kv, tr: tr, effects: effects}

	saved, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		logger.WithContext(ctx).Warn("Failed to read saved locale, using default", zap.Error(err))
	} else if ok {
		if l, supported := Parse(saved); supported {
			m.locale = l
		}
	}

	if effects != nil {
		effects.Apply(m.locale)
	}
	return m
}

func (m *Manager) Locale() Locale {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locale
}

// SetLocale switches to l. Unsupported or unchanged values are ignored and
// report false.
func (m *Manager) SetLocale(ctx context.Context, l Locale) (bool, error) {
	m.mu.Lock()
	if !l.Supported() || l == m.locale {
		m.mu.Unlock()
		return false, nil
	}
	if err := m.kv.Set(ctx, StorageKey, string(l)); err != nil {
		m.mu.Unlock()
		return false, fmt.Errorf("failed to persist locale: %w", err)
	}
	m.locale = l
	m.mu.Unlock()

	logger.WithContext(ctx).Info("Locale changed", zap.String("locale", string(l)))
	if m.effects != nil {
		m.effects.Apply(l)
		m.effects.Announce("Language changed to "+l.Name(), AnnouncementDuration)
	}
	return true, nil
}

// T translates key in the active locale.
func (m *Manager) T(key, fallback string) string {
	return m.tr.T(m.Locale(), key, fallback)
}

func (m *Manager) FormatNumber(v float64) string { return FormatNumber(m.Locale(), v) }

func (m *Manager) FormatDate(t time.Time) string { return FormatDate(m.Locale(), t) }
