package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bizdash/internal/core/domain"
)

// ForeignKey decodes a relation that the backend may render as a number, a
// numeric string, an embedded object carrying "id", or null.
type ForeignKey domain.ID

// UnmarshalJSON implements json.Unmarshaler.
func (f *ForeignKey) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	switch b[0] {
	case '{':
		var obj struct {
			ID ForeignKey `json:"id"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*f = obj.ID
		return nil
	case '"':
		s := strings.TrimSpace(strings.Trim(string(b), `"`))
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("foreign key %q is not numeric", s)
		}
		*f = ForeignKey(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("foreign key: %w", err)
	}
	*f = ForeignKey(n)
	return nil
}

// ID returns the domain identifier.
func (f ForeignKey) ID() domain.ID { return domain.ID(f) }

// First returns the first non-zero key, used where the read path may carry
// either "business" or "business_id".
func First(keys ...ForeignKey) domain.ID {
	for _, k := range keys {
		if k != 0 {
			return k.ID()
		}
	}
	return 0
}
