package cache

import (
	"sort"
	"strings"

	"github.com/segmentio/fasthash/fnv1a"
)

// Params are the normalized filter parameters of a query
type Params map[string]string

// Key addresses one cache entry: resource name plus normalized parameters.
// Two keys built from equivalent normalized parameters are identical.
type Key struct {
	Resource  string
	Params    Params
	canonical string
	hash      uint64
}

// NewKey builds a composite key with a canonical parameter order
func NewKey(resource string, params Params) Key {
	var b strings.Builder
	b.WriteString(resource)
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteByte('?')
		for i, name := range names {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(name)
			b.WriteByte('=')
			b.WriteString(params[name])
		}
	}
	canonical := b.String()
	return Key{
		Resource:  resource,
		Params:    params,
		canonical: canonical,
		hash:      fnv1a.HashString64(canonical),
	}
}

// String returns the canonical key string
func (k Key) String() string {
	return k.canonical
}

// Hash returns the fnv1a hash of the canonical key string
func (k Key) Hash() uint64 {
	return k.hash
}
