package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCluster struct {
	mu       sync.Mutex
	indices  map[string]bool
	docs     map[string]json.RawMessage
	requests []string
}

func newFakeCluster(t *testing.T) (*fakeCluster, *httptest.Server) {
	t.Helper()
	fc := &fakeCluster{indices: map[string]bool{}, docs: map[string]json.RawMessage{}}
	srv := httptest.NewServer(http.HandlerFunc(fc.serve))
	t.Cleanup(srv.Close)
	return fc, srv
}

func (fc *fakeCluster) serve(w http.ResponseWriter, r *http.Request) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.requests = append(fc.requests, r.Method+" "+r.URL.Path)

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	body, _ := io.ReadAll(r.Body)

	switch {
	case r.URL.Path == "/":
		_, _ = w.Write([]byte(`{"version":{"number":"8.19.0"}}`))
	case r.Method == http.MethodHead:
		if fc.indices[r.URL.Path[1:]] {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut && len(r.URL.Path) > 1 && !containsDoc(r.URL.Path):
		fc.indices[r.URL.Path[1:]] = true
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	case (r.Method == http.MethodPut || r.Method == http.MethodPost) && containsDoc(r.URL.Path):
		fc.docs[r.URL.Path] = body
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	case r.Method == http.MethodDelete:
		if _, ok := fc.docs[r.URL.Path]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"result":"not_found"}`))
			return
		}
		delete(fc.docs, r.URL.Path)
		_, _ = w.Write([]byte(`{"result":"deleted"}`))
	default:
		var hits []map[string]interface{}
		for path, doc := range fc.docs {
			hits = append(hits, map[string]interface{}{"_id": path, "_score": 1.0, "_source": doc})
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"hits": map[string]interface{}{
				"total": map[string]interface{}{"value": len(hits)},
				"hits":  hits,
			},
		})
	}
}

func containsDoc(path string) bool {
	return strings.Contains(path, "/_doc/")
}

func TestClientLifecycle(t *testing.T) {
	fc, srv := newFakeCluster(t)
	c, err := NewClient(&Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.CreateIndex(ctx, "catalog_nodes", `{"mappings":{}}`))
	require.NoError(t, c.CreateIndex(ctx, "catalog_nodes", `{"mappings":{}}`))
	assert.Contains(t, fc.requests, "PUT /catalog_nodes")

	require.NoError(t, c.Index(ctx, "catalog_nodes", "n1", map[string]string{"name_en": "Books"}))

	res, err := c.Search(ctx, "catalog_nodes", map[string]interface{}{"query": map[string]interface{}{"match_all": struct{}{}}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Hits.Total.Value)
	require.Len(t, res.Hits.Hits, 1)
	assert.JSONEq(t, `{"name_en":"Books"}`, string(res.Hits.Hits[0].Source))

	require.NoError(t, c.Delete(ctx, "catalog_nodes", "n1"))
	require.NoError(t, c.Delete(ctx, "catalog_nodes", "n1"))

	creates := 0
	for _, r := range fc.requests {
		if r == "PUT /catalog_nodes" {
			creates++
		}
	}
	assert.Equal(t, 1, creates)
}

func TestNewClientUnreachable(t *testing.T) {
	_, err := NewClient(&Config{Addresses: []string{"http://127.0.0.1:1"}})
	assert.Error(t, err)
}
