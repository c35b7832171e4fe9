package debugsrv

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hexnav/internal/app"
	"hexnav/internal/config"
	"hexnav/internal/logging"
	"hexnav/pkg/hexmap"

	"github.com/gorilla/websocket"
)

type staticSource struct {
	snap *app.Snapshot
}

func (s staticSource) Snapshot() *app.Snapshot { return s.snap }

func newTestServer(t *testing.T, source SnapshotSource, limit float64, burst int) *httptest.Server {
	t.Helper()
	done := make(chan struct{})
	router := NewRouter(RouterConfig{
		Source:         source,
		Log:            logging.Nop(),
		CORSOrigins:    []string{"http://localhost:*"},
		RateLimit:      limit,
		Burst:          burst,
		StreamInterval: 10 * time.Millisecond,
	}, done)
	ts := httptest.NewServer(router)
	t.Cleanup(func() {
		close(done)
		ts.Close()
	})
	return ts
}

func get(t *testing.T, url string, header map[string]string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, staticSource{}, 100, 100)
	resp, body := get(t, ts.URL+"/healthz", nil)
	if resp.StatusCode != http.StatusOK || body != "ok" {
		t.Fatalf("healthz: %d %q", resp.StatusCode, body)
	}
}

func TestStateEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Radius = 2
	cfg.Grid.Blocked = []config.Cell{{Q: 1, R: -1}}
	session, err := app.NewSession(cfg, logging.Nop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	ts := newTestServer(t, session, 100, 100)
	resp, body := get(t, ts.URL+"/state", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("state: %d %s", resp.StatusCode, body)
	}
	var snap app.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Mode != config.ModePath || !snap.Actor.Present || snap.Actor.Position.Y != 0.5 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if len(snap.Blocked) != 1 || snap.Blocked[0] != (hexmap.Hex{Q: 1, R: -1}) {
		t.Fatalf("blocked cells %v", snap.Blocked)
	}
	if !strings.Contains(body, `"q":1`) {
		t.Fatalf("hex coordinates should use lower-case keys: %s", body)
	}
}

func TestStateNotReady(t *testing.T) {
	ts := newTestServer(t, staticSource{}, 100, 100)
	resp, _ := get(t, ts.URL+"/state", nil)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, staticSource{}, 100, 100)
	resp, body := get(t, ts.URL+"/metrics", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "hexnav_frame_duration_seconds") {
		t.Fatalf("metrics: %d", resp.StatusCode)
	}
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, staticSource{}, 0.001, 2)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, _ := get(t, ts.URL+"/healthz", nil)
		codes = append(codes, resp.StatusCode)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("status codes %v", codes)
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, staticSource{}, 100, 100)

	resp, _ := get(t, ts.URL+"/healthz", map[string]string{"Origin": "http://localhost:5173"})
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allowed origin header = %q", got)
	}

	resp, _ = get(t, ts.URL+"/healthz", map[string]string{"Origin": "https://example.com"})
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin should not be allowed, got %q", got)
	}
}

func TestStreamSendsSnapshot(t *testing.T) {
	snap := &app.Snapshot{Tick: 42, Mode: config.ModeBlock}
	ts := newTestServer(t, staticSource{snap: snap}, 100, 100)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got app.Snapshot
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Tick != 42 || got.Mode != config.ModeBlock {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestStreamRejectsForeignOrigin(t *testing.T) {
	ts := newTestServer(t, staticSource{snap: &app.Snapshot{}}, 100, 100)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	header := http.Header{}
	header.Set("Origin", "https://example.com")
	if _, _, err := websocket.DefaultDialer.Dial(url, header); err == nil {
		t.Fatalf("foreign origin should be rejected")
	}
}
