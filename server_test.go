package main

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/posapi"
	"github.com/mmdatafocus/positnow_mobile/screens"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.UseRedis(nil)
	r := newRouter(config.GetLogger(), screens.NewHandler(posapi.NewClient(config.UpstreamConfig{})))

	cases := []struct {
		path   string
		status int
	}{
		{"/healthz", http.StatusNoContent},
		{"/api/items", http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, w.Code)
		}
		if w.Header().Get("x-correlation-id") == "" {
			t.Fatalf("%s: correlation id not echoed", tc.path)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"https://a.example, https://b.example ,", []string{"https://a.example", "https://b.example"}},
	}
	for _, tc := range cases {
		if got := splitAndTrim(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitAndTrim(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
