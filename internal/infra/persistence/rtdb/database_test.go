package rtdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"bootwatcher/config"
	"bootwatcher/internal/infra/firebase"

	"firebase.google.com/go/v4/db"
	"github.com/stretchr/testify/require"
)

// fakeDatabase serves the subset of the realtime database REST protocol the
// repositories use: push, get, delete and an orderBy/equalTo child query.
type fakeDatabase struct {
	mu      sync.Mutex
	nodes   map[string]map[string]json.RawMessage
	queries []url.Values
	nextID  int
	denied  bool
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{nodes: map[string]map[string]json.RawMessage{}}
}

func (f *fakeDatabase) seed(node, key, record string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.nodes[node] == nil {
		f.nodes[node] = map[string]json.RawMessage{}
	}
	f.nodes[node][key] = json.RawMessage(record)
}

func (f *fakeDatabase) deny() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.denied = true
}

func (f *fakeDatabase) child(node, key string) (json.RawMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.nodes[node][key]

	return raw, ok
}

func (f *fakeDatabase) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queries) == 0 {
		return nil
	}

	return f.queries[len(f.queries)-1]
}

func (f *fakeDatabase) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.denied {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Permission denied"}`)

		return
	}

	segs := strings.Split(strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json"), "/")
	node := segs[0]

	switch {
	case r.Method == http.MethodPost && len(segs) == 1:
		body, _ := io.ReadAll(r.Body)
		f.nextID++
		key := fmt.Sprintf("-N%03d", f.nextID)
		if f.nodes[node] == nil {
			f.nodes[node] = map[string]json.RawMessage{}
		}
		f.nodes[node][key] = body
		writeFakeJSON(w, map[string]string{"name": key})

	case r.Method == http.MethodGet && len(segs) == 1:
		query := r.URL.Query()
		f.queries = append(f.queries, query)

		children, ok := f.nodes[node]
		if !ok {
			_, _ = io.WriteString(w, "null")

			return
		}
		writeFakeJSON(w, filterChildren(children, query))

	case r.Method == http.MethodGet && len(segs) == 2:
		raw, ok := f.nodes[node][segs[1]]
		if !ok {
			_, _ = io.WriteString(w, "null")

			return
		}
		_, _ = w.Write(raw)

	case r.Method == http.MethodDelete && len(segs) == 2:
		delete(f.nodes[node], segs[1])
		_, _ = io.WriteString(w, "null")

	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"unsupported request"}`)
	}
}

func filterChildren(children map[string]json.RawMessage, query url.Values) map[string]json.RawMessage {
	var child string
	if err := json.Unmarshal([]byte(query.Get("orderBy")), &child); err != nil || strings.HasPrefix(child, "$") || !query.Has("equalTo") {
		return children
	}

	var want any
	_ = json.Unmarshal([]byte(query.Get("equalTo")), &want)

	matched := map[string]json.RawMessage{}
	for key, raw := range children {
		var record map[string]any
		if err := json.Unmarshal(raw, &record); err == nil && record[child] == want {
			matched[key] = raw
		}
	}

	return matched
}

func writeFakeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// newTestClient points a database client at a fake served on localhost
// through the emulator host variable.
func newTestClient(t *testing.T) (*db.Client, *fakeDatabase) {
	t.Helper()

	fake := newFakeDatabase()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	port := srv.Listener.Addr().(*net.TCPAddr).Port
	t.Setenv("FIREBASE_DATABASE_EMULATOR_HOST", fmt.Sprintf("localhost:%d?ns=test", port))

	client, err := firebase.NewDatabaseClient(context.Background(), &config.FirebaseConfig{
		ProjectID:   "demo",
		DatabaseURL: "https://test.firebaseio.com",
	})
	require.NoError(t, err)

	return client, fake
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
