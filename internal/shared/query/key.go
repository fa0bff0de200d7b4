// Package query defines cache keys and the client that views read through.
//
// A view reads its data with Fetch under a Key; a mutation calls Invalidate
// with every Key whose data it may have changed. Invalidating a key also
// drops every key that extends it, so {"helpdesk-tickets"} covers
// {"helpdesk-tickets", "all"}.
package query

import (
	"fmt"
	"net/url"
	"strings"
)

// Key is an ordered list of parts, e.g. {"helpdesk-ticket", "42"}.
type Key []string

// NewKey builds a Key, formatting each part with fmt.Sprint.
func NewKey(parts ...any) Key {
	k := make(Key, len(parts))
	for i, p := range parts {
		k[i] = fmt.Sprint(p)
	}
	return k
}

// String encodes the key with escaped parts joined by "/", so distinct keys
// never collide and a prefix key encodes to a prefix of its extensions.
func (k Key) String() string {
	escaped := make([]string, len(k))
	for i, p := range k {
		escaped[i] = url.PathEscape(p)
	}
	return strings.Join(escaped, "/")
}

// HasPrefix reports whether p's parts are the leading parts of k.
func (k Key) HasPrefix(p Key) bool {
	if len(p) > len(k) {
		return false
	}
	for i := range p {
		if k[i] != p[i] {
			return false
		}
	}
	return true
}

func (k Key) Equal(o Key) bool {
	return len(k) == len(o) && k.HasPrefix(o)
}

// ParseKey reverses String.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, nil
	}
	parts := strings.Split(s, "/")
	k := make(Key, len(parts))
	for i, p := range parts {
		v, err := url.PathUnescape(p)
		if err != nil {
			return nil, fmt.Errorf("invalid key part %q: %w", p, err)
		}
		k[i] = v
	}
	return k, nil
}

// Unique drops repeated keys, keeping first occurrences in order.
func Unique(keys []Key) []Key {
	seen := make(map[string]struct{}, len(keys))
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		s := k.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, k)
	}
	return out
}
