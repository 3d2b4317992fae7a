package screens

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/posapi"
	"github.com/redis/go-redis/v9"
)

// fakeUpstream serves canned bodies per path and records the order of calls.
type fakeUpstream struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	calls  []string
}

func (f *fakeUpstream) handle(path string, status int, body string) {
	f.routes[path] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.URL.Path)
	route, ok := f.routes[r.URL.Path]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	route(w, r)
}

func (f *fakeUpstream) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type testEnv struct {
	t        *testing.T
	router   *gin.Engine
	upstream *fakeUpstream
	redis    *miniredis.Miniredis
	handler  *Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("API_SECRET", "screens-test-secret")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	config.UseRedis(client)
	t.Cleanup(func() {
		config.UseRedis(nil)
		_ = client.Close()
	})

	up := &fakeUpstream{routes: map[string]func(http.ResponseWriter, *http.Request){}}
	up.handle("/user/login", http.StatusOK, `{"token":"upstream-token"}`)
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	h := NewHandler(posapi.NewClient(config.UpstreamConfig{
		CatalogBaseURL: srv.URL,
		AccountBaseURL: srv.URL,
		Timeout:        5 * time.Second,
	}))
	h.Now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	r := gin.New()
	RegisterRoutes(r, h)
	return &testEnv{t: t, router: r, upstream: up, redis: mr, handler: h}
}

func (e *testEnv) do(method string, path string, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login() string {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/login", "", LoginRequest{Username: "cashier", Password: "secret"})
	if w.Code != http.StatusOK {
		e.t.Fatalf("login status %d: %s", w.Code, w.Body.String())
	}
	var resp LoginResponse
	decodeBody(e.t, w, &resp)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
