package queries

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"linkup_client/cache"
	"linkup_client/client"
	"linkup_client/storage"
)

type harness struct {
	queries *Queries
	cache   *cache.Store
	device  *storage.Store
	hits    map[string]*int64
}

// newHarness wires the full stack against an httptest backend; routes maps
// "METHOD /path" to a JSON response body and counts hits per route
func newHarness(t *testing.T, routes map[string]string) *harness {
	t.Helper()

	h := &harness{hits: make(map[string]*int64)}
	for route := range routes {
		h.hits[route] = new(int64)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path
		body, ok := routes[route]
		if !ok {
			t.Errorf("unexpected request: %s", route)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		atomic.AddInt64(h.hits[route], 1)
		if body == "" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"server"}`))
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	device, err := storage.Open(filepath.Join(t.TempDir(), "device.db"))
	require.NoError(t, err)
	t.Cleanup(func() { device.Close() })

	h.cache = cache.NewStore()
	h.device = device
	h.queries = New(h.cache, device, client.NewWithBase(server.URL, device))
	return h
}

// newOfflineHarness wires the stack against an unreachable backend
func newOfflineHarness(t *testing.T) *harness {
	t.Helper()

	device, err := storage.Open(filepath.Join(t.TempDir(), "device.db"))
	require.NoError(t, err)
	t.Cleanup(func() { device.Close() })

	store := cache.NewStore()
	return &harness{
		queries: New(store, device, client.NewWithBase("http://127.0.0.1:1", device)),
		cache:   store,
		device:  device,
	}
}

func (h *harness) hitCount(route string) int64 {
	return atomic.LoadInt64(h.hits[route])
}
