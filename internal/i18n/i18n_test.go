package i18n_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/SscSPs/bizdash/internal/adapters/storage"
	"github.com/SscSPs/bizdash/internal/i18n"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEffects struct {
	applied   []i18n.Locale
	announced []string
	durations []time.Duration
}

func (r *recordingEffects) Apply(l i18n.Locale) { r.applied = append(r.applied, l) }

func (r *recordingEffects) Announce(msg string, d time.Duration) {
	r.announced = append(r.announced, msg)
	r.durations = append(r.durations, d)
}

type failingStore struct{ *storage.MemoryStore }

func (failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

func testTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.LoadTranslator(fstest.MapFS{
		"en.json": {Data: []byte(`{"messages":{"hello":"Hello","bye":"Bye"},"labels":{"name":"Name"}}`)},
		"ar.json": {Data: []byte(`{"messages":{"hello":"مرحبا"},"labels":"flat"}`)},
	})
	require.NoError(t, err)
	return tr
}

func TestLocale(t *testing.T) {
	l, ok := i18n.Parse(" AR ")
	assert.True(t, ok)
	assert.Equal(t, i18n.Arabic, l)
	_, ok = i18n.Parse("fr")
	assert.False(t, ok)

	assert.Equal(t, "rtl", i18n.Arabic.Dir())
	assert.Equal(t, "ltr", i18n.English.Dir())
	assert.Equal(t, "font-arabic", i18n.Arabic.FontClass())
	assert.Equal(t, "font-sans", i18n.English.FontClass())
	assert.Equal(t, "ar-EG", i18n.Arabic.Tag().String())
	assert.Equal(t, "en-US", i18n.English.Tag().String())
}

func TestTranslator_Fallbacks(t *testing.T) {
	tr := testTranslator(t)

	tests := []struct {
		name     string
		locale   i18n.Locale
		key      string
		fallback string
		want     string
	}{
		{"direct hit", i18n.Arabic, "messages.hello", "", "مرحبا"},
		{"arabic falls back to english", i18n.Arabic, "messages.bye", "", "Bye"},
		{"non-object parent falls back to english", i18n.Arabic, "labels.name", "", "Name"},
		{"missing uses fallback", i18n.English, "messages.nope", "Nope", "Nope"},
		{"missing without fallback returns key", i18n.Arabic, "messages.nope", "", "messages.nope"},
		{"object value is not a string", i18n.English, "messages", "", "messages"},
		{"empty key", i18n.English, "", "", ""},
		{"unknown locale behaves like english", i18n.Locale("fr"), "messages.hello", "", "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, tt.fallback))
		})
	}
}

func TestLoadTranslator_Errors(t *testing.T) {
	_, err := i18n.LoadTranslator(fstest.MapFS{"en.json": {Data: []byte(`{}`)}})
	assert.Error(t, err)

	_, err = i18n.LoadTranslator(fstest.MapFS{
		"en.json": {Data: []byte(`{}`)},
		"ar.json": {Data: []byte(`{`)},
	})
	assert.Error(t, err)
}

func TestNewTranslator_EmbeddedDictionaries(t *testing.T) {
	tr, err := i18n.NewTranslator()
	require.NoError(t, err)

	assert.Equal(t, "Saved successfully", tr.T(i18n.English, "messages.saveSuccess", ""))
	assert.Equal(t, "تم الحفظ بنجاح", tr.T(i18n.Arabic, "messages.saveSuccess", ""))
	assert.Equal(t, "Bank transfer", tr.T(i18n.English, "payment.methods.bank_transfer", ""))
	// only present in the English dictionary
	assert.Equal(t, "New businesses (30 days)", tr.T(i18n.Arabic, "dashboard.newBusinesses", ""))
}

func TestManager_LoadsPersistedLocale(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, i18n.StorageKey, "ar"))
	fx := &recordingEffects{}

	m := i18n.NewManager(ctx, kv, testTranslator(t), fx)

	assert.Equal(t, i18n.Arabic, m.Locale())
	assert.Equal(t, []i18n.Locale{i18n.Arabic}, fx.applied)
	assert.Empty(t, fx.announced)
	assert.Equal(t, "مرحبا", m.T("messages.hello", ""))
}

func TestManager_DefaultsToEnglish(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, i18n.StorageKey, "klingon"))

	m := i18n.NewManager(ctx, kv, testTranslator(t), nil)

	assert.Equal(t, i18n.English, m.Locale())
}

func TestManager_SetLocale(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	fx := &recordingEffects{}
	m := i18n.NewManager(ctx, kv, testTranslator(t), fx)
	fx.applied = nil

	changed, err := m.SetLocale(ctx, i18n.Arabic)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, i18n.Arabic, m.Locale())
	saved, ok, _ := kv.Get(ctx, i18n.StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "ar", saved)
	assert.Equal(t, []i18n.Locale{i18n.Arabic}, fx.applied)
	assert.Equal(t, []string{"Language changed to Arabic"}, fx.announced)
	assert.Equal(t, []time.Duration{time.Second}, fx.durations)

	// unchanged and unsupported values are no-ops
	changed, err = m.SetLocale(ctx, i18n.Arabic)
	require.NoError(t, err)
	assert.False(t, changed)
	changed, err = m.SetLocale(ctx, i18n.Locale("fr"))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, fx.applied, 1)
	assert.Len(t, fx.announced, 1)

	changed, err = m.SetLocale(ctx, i18n.English)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Language changed to English", fx.announced[1])
}

func TestManager_SetLocalePersistFailure(t *testing.T) {
	ctx := context.Background()
	fx := &recordingEffects{}
	m := i18n.NewManager(ctx, failingStore{storage.NewMemoryStore()}, testTranslator(t), fx)

	changed, err := m.SetLocale(ctx, i18n.Arabic)

	assert.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, i18n.English, m.Locale())
	assert.Empty(t, fx.announced)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mar 5, 2024", i18n.FormatDate(i18n.English, d))
	assert.Equal(t, "٥ مارس ٢٠٢٤", i18n.FormatDate(i18n.Arabic, d))
	assert.Empty(t, i18n.FormatDate(i18n.English, time.Time{}))
	assert.Empty(t, i18n.FormatDate(i18n.Arabic, time.Time{}))
}

func TestArabicDigits(t *testing.T) {
	assert.Equal(t, "١٢٣-٠", i18n.ArabicDigits("123-0"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234.5", i18n.FormatNumber(i18n.English, 1234.5))
	assert.NotEmpty(t, i18n.FormatNumber(i18n.Arabic, 1234.5))
}

func TestFormatCurrency(t *testing.T) {
	amount := decimal.RequireFromString("1234.567")

	en := i18n.FormatCurrency(i18n.English, amount, "usd")
	assert.Contains(t, en, "1,234.57")
	assert.Contains(t, en, "$")

	assert.NotEmpty(t, i18n.FormatCurrency(i18n.Arabic, amount, "USD"))
	assert.Equal(t, "XYZ1 1234.57", i18n.FormatCurrency(i18n.English, amount, "xyz1"))
}
