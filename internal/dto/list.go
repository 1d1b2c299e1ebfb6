package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListParams are the optional filter/sort parameters accepted by list endpoints.
type ListParams struct {
	Business int64             // business | business_id filter, 0 means unset
	Search   string            // free text search
	Ordering string            // e.g. "-created_at", "order_index"
	Page     int               // 1-based page, 0 means unset
	Extra    map[string]string // endpoint specific filters (status, input_type, ...)
}

// Values encodes the params as a query string. businessKey names the business
// filter because endpoints disagree on it.
func (p ListParams) Values(businessKey string) url.Values {
	v := url.Values{}
	if p.Business != 0 {
		v.Set(businessKey, strconv.FormatInt(p.Business, 10))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Ordering != "" {
		v.Set("ordering", p.Ordering)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	for k, val := range p.Extra {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Page is the paginated envelope some list endpoints answer with.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// DecodeList accepts either a bare JSON array or a {"results": [...]} envelope
// and returns the records in response order. Anything else yields an empty list.
func DecodeList[T any](raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	switch raw[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	case '{':
		var page Page[T]
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		if page.Results == nil {
			return []T{}, nil
		}
		return page.Results, nil
	}
	return []T{}, nil
}

// DecodeOneOrMany accepts a single object or an array of objects.
func DecodeOneOrMany[T any](raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var one T
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, fmt.Errorf("decode object: %w", err)
		}
		return []T{one}, nil
	}
	return DecodeList[T](raw)
}
