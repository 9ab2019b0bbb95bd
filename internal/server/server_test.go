package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(Config{MaxCells: 10_000}).Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s, want ok status", body)
	}
}

func TestAlgorithms(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/v1/algorithms")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Algorithms []string `json:"algorithms"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(payload.Algorithms) != 6 {
		t.Errorf("got %d algorithms, want 6: %v", len(payload.Algorithms), payload.Algorithms)
	}
}

func TestMazeJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/v1/maze?algorithm=wilsons&width=4&height=3&seed=12345678")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var m mazeResponse
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.ID == "" {
		t.Error("response missing id")
	}
	if m.Seed != 12345678 {
		t.Errorf("seed = %d, want 12345678", m.Seed)
	}
	if m.Width != 4 || m.Height != 3 {
		t.Errorf("dims = %dx%d, want 4x3", m.Width, m.Height)
	}
	if len(m.Cells) != 12 {
		t.Fatalf("got %d cells, want 12", len(m.Cells))
	}

	// A perfect maze on w*h cells opens 2*(w*h-1) passage flags.
	flags := 0
	for _, c := range m.Cells {
		for b := c; b != 0; b >>= 1 {
			flags += int(b & 1)
		}
	}
	if flags != 22 {
		t.Errorf("total passage flags = %d, want 22", flags)
	}
}

func TestMazeSeededRequestsAreReproducible(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/api/v1/maze?width=5&height=5&seed=99&format=text"

	_, first := get(t, url)
	_, second := get(t, url)
	if string(first) != string(second) {
		t.Error("same seed returned different mazes")
	}
}

func TestMazeTextFormat(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/v1/maze?width=3&height=2&seed=1&format=text")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.HasPrefix(string(body), "+---+---+---+") {
		t.Errorf("body is not ASCII maze:\n%s", body)
	}
}

func TestMazePNGFormat(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/v1/maze?width=3&height=3&seed=5&format=png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if len(body) < 8 || body[0] != 0x89 || string(body[1:4]) != "PNG" {
		t.Error("body missing PNG signature")
	}
}

func TestMazeBadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"unknown algorithm", "?algorithm=kruskal"},
		{"zero width", "?width=0"},
		{"negative height", "?height=-2"},
		{"non-numeric width", "?width=five"},
		{"bad seed", "?seed=-1"},
		{"bad format", "?format=gif"},
		{"too large", "?width=200&height=200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/api/v1/maze"+tt.query)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", resp.StatusCode, body)
			}
			var e errorResponse
			if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
				t.Errorf("error body not JSON with error field: %s", body)
			}
		})
	}
}

func TestMazeDefaults(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/v1/maze")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, body)
	}

	var m mazeResponse
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Width != 5 || m.Height != 5 {
		t.Errorf("dims = %dx%d, want default 5x5", m.Width, m.Height)
	}
	if m.Algorithm != "AldousBroder" {
		t.Errorf("algorithm = %q, want default AldousBroder", m.Algorithm)
	}
}
