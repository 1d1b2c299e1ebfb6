package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed locales/*.json
var embedded embed.FS

// Translator resolves dotted keys against per-locale dictionaries.
type Translator struct {
	dicts map[Locale]map[string]any
}

// NewTranslator loads the dictionaries shipped with the binary.
func NewTranslator() (*Translator, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return LoadTranslator(sub)
}

// LoadTranslator reads <locale>.json for every supported locale from fsys.
func LoadTranslator(fsys fs.FS) (*Translator, error) {
	t := &Translator{dicts: make(map[Locale]map[string]any, 2)}
	for _, l := range []Locale{English, Arabic} {
		raw, err := fs.ReadFile(fsys, string(l)+".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s dictionary: %w", l, err)
		}
		var dict map[string]any
		if err := json.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("failed to parse %s dictionary: %w", l, err)
		}
		t.dicts[l] = dict
	}
	return t, nil
}

// T looks key up in l, then in English. When neither has a string at key the
// fallback is returned, or key itself when fallback is empty.
func (t *Translator) T(l Locale, key, fallback string) string {
	if v, ok := lookup(t.dicts[l], key); ok {
		return v
	}
	if l != English {
		if v, ok := lookup(t.dicts[English], key); ok {
			return v
		}
	}
	if fallback != "" {
		return fallback
	}
	return key
}

func lookup(dict map[string]any, key string) (string, bool) {
	if dict == nil || key == "" {
		return "", false
	}
	var node any = dict
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}
