package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/caseglance/caseglance/internal/cache"
	"github.com/caseglance/caseglance/internal/model"
)

func testSourceConfig(baseURL string) model.SourceConfig {
	return model.SourceConfig{
		BaseURL:           baseURL,
		APIKey:            "test-key",
		Timeout:           5 * time.Second,
		UserAgent:         "caseglance-test",
		MaxBodyBytes:      1 << 20,
		RequestsPerSecond: 100,
		Burst:             10,
	}
}

func TestClientRecords(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/records/clients" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = fmt.Fprint(w, `{"records": [{"id": "rec1", "fields": {"Client Name": ["Maria Rodriguez"]}}]}`)
	}))
	defer server.Close()

	client := NewClient(testSourceConfig(server.URL))
	recs, err := client.Records(context.Background(), "clients")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "rec1" {
		t.Fatalf("got %+v", recs)
	}
	if recs[0].Table != "clients" {
		t.Errorf("table = %q, want clients", recs[0].Table)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestClientRecordsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(testSourceConfig(server.URL))
	if _, err := client.Records(context.Background(), "clients"); err == nil {
		t.Error("expected error for 403 response")
	}
}

func TestClientCachesResponses(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, `{"records": []}`)
	}))
	defer server.Close()

	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	client := NewClient(testSourceConfig(server.URL), WithCache(mem, time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := client.Records(context.Background(), "clients"); err != nil {
			t.Fatalf("Records: %v", err)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

func TestClientSchema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schema/clients" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = fmt.Fprint(w, `{"fields": [
			{"name": "Client Name", "type": "singleLineText"},
			{"name": "Days to Next Hearing", "type": "formula"}
		]}`)
	}))
	defer server.Close()

	client := NewClient(testSourceConfig(server.URL))
	schema, err := client.Schema(context.Background(), "clients")
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if schema["Days to Next Hearing"] != "formula" {
		t.Errorf("schema = %v", schema)
	}
}
