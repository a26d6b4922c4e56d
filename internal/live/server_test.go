package live

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/parabola/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(config.DefaultConfig(), log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) (*websocket.Conn, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn, ctx
}

func roundTrip(t *testing.T, ctx context.Context, conn *websocket.Conn, req string) Response {
	t.Helper()
	if err := wsjson.Write(ctx, conn, json.RawMessage(req)); err != nil {
		t.Fatalf("Write(%s) error = %v", req, err)
	}
	var resp Response
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return resp
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected 200", resp.StatusCode)
	}
}

func TestLaunch(t *testing.T) {
	conn, ctx := dial(t, newTestServer(t))

	resp := roundTrip(t, ctx, conn, `{"type":"launch","launch":{"y0":2,"v0":20,"deg":45,"g":9.81},"points":10}`)
	if resp.Type != TypeTrajectory {
		t.Fatalf("Type = %q, expected %q (error %q)", resp.Type, TypeTrajectory, resp.Error)
	}
	if resp.Session == "" {
		t.Error("expected a session ID")
	}
	if resp.Report == nil || resp.Report.Summary.Range == nil {
		t.Fatal("expected a report with a range")
	}
	if got := *resp.Report.Summary.Range; !approx(got, 42.685, 0.01) {
		t.Errorf("range = %v, expected about 42.685", got)
	}
	if got := len(resp.Report.Points); got != 11 {
		t.Errorf("len(points) = %d, expected 11", got)
	}
}

func TestLaunchKeepsOmittedFields(t *testing.T) {
	conn, ctx := dial(t, newTestServer(t))

	first := roundTrip(t, ctx, conn, `{"type":"launch","launch":{"v0":30}}`)
	resp := roundTrip(t, ctx, conn, `{"type":"launch","launch":{"deg":120}}`)

	if resp.Report == nil {
		t.Fatalf("expected a report, got %+v", resp)
	}
	if got := resp.Report.Launch; got.V0 != 30 || got.Deg != 90 || got.Y0 != 2 {
		t.Errorf("launch = %+v, expected v0 30 kept and deg clamped to 90", got)
	}
	if resp.Session != first.Session {
		t.Error("session ID should be stable on one connection")
	}
}

func TestQuery(t *testing.T) {
	conn, ctx := dial(t, newTestServer(t))

	// Before any launch the configured default applies
	resp := roundTrip(t, ctx, conn, `{"type":"query","query":{"t":1}}`)
	if resp.Type != TypePoint || resp.Point == nil {
		t.Fatalf("response = %+v, expected a point", resp)
	}
	if !approx(resp.Point.X, 14.142, 0.001) || !approx(resp.Point.Y, 11.237, 0.001) {
		t.Errorf("point = %+v, expected about (14.142, 11.237)", *resp.Point)
	}

	resp = roundTrip(t, ctx, conn, `{"type":"query","query":{"x":500}}`)
	if resp.Type != TypePoint || !resp.Miss || resp.Point != nil {
		t.Errorf("response = %+v, expected a miss", resp)
	}

	resp = roundTrip(t, ctx, conn, `{"type":"query"}`)
	if !resp.Miss {
		t.Errorf("empty query should miss, got %+v", resp)
	}
}

func TestUnknownTypeKeepsConnection(t *testing.T) {
	conn, ctx := dial(t, newTestServer(t))

	resp := roundTrip(t, ctx, conn, `{"type":"bogus"}`)
	if resp.Type != TypeError || !strings.Contains(resp.Error, "bogus") {
		t.Errorf("response = %+v, expected an error naming the type", resp)
	}

	resp = roundTrip(t, ctx, conn, `{"type":"launch"}`)
	if resp.Type != TypeTrajectory {
		t.Errorf("connection should stay usable, got %+v", resp)
	}
}

func TestInvalidLaunch(t *testing.T) {
	conn, ctx := dial(t, newTestServer(t))

	resp := roundTrip(t, ctx, conn, `{"type":"launch","launch":{"v0":"fast"}}`)
	if resp.Type != TypeError || !strings.HasPrefix(resp.Error, "invalid launch") {
		t.Errorf("response = %+v, expected an invalid launch error", resp)
	}
}

func TestHugeLaunchKeepsConnection(t *testing.T) {
	conn, ctx := dial(t, newTestServer(t))

	resp := roundTrip(t, ctx, conn, `{"type":"launch","launch":{"v0":1e200,"y0":1e300}}`)
	if resp.Type != TypeTrajectory || resp.Report == nil {
		t.Fatalf("response = %+v, expected a trajectory", resp)
	}
	if resp.Report.Launch.V0 != config.MaxSpeed || resp.Report.Launch.Y0 != config.MaxDistance {
		t.Errorf("launch = %+v, expected speed and height at their limits", resp.Report.Launch)
	}
	if err := resp.Report.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	resp = roundTrip(t, ctx, conn, `{"type":"launch","launch":{"v0":20,"y0":2}}`)
	if resp.Type != TypeTrajectory || resp.Report == nil || resp.Report.Launch.V0 != 20 {
		t.Errorf("follow-up launch = %+v, expected a trajectory at v0 20", resp)
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		vs   []float64
		want bool
	}{
		{[]float64{1, -2, 0}, true},
		{[]float64{1, math.Inf(1)}, false},
		{[]float64{math.Inf(-1)}, false},
		{[]float64{math.NaN(), 0}, false},
		{nil, true},
	}

	for _, tc := range tests {
		if got := finite(tc.vs...); got != tc.want {
			t.Errorf("finite(%v) = %v, expected %v", tc.vs, got, tc.want)
		}
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	ts := newTestServer(t)
	a, ctxA := dial(t, ts)
	b, ctxB := dial(t, ts)

	roundTrip(t, ctxA, a, `{"type":"launch","launch":{"g":1.62}}`)
	resp := roundTrip(t, ctxB, b, `{"type":"launch"}`)

	if resp.Report == nil || resp.Report.Launch.G != 9.81 {
		t.Errorf("second session launch = %+v, expected the default gravity", resp.Report)
	}
}

func TestSessionPointCap(t *testing.T) {
	s := newSession(config.DefaultConfig())
	resp := s.handle(Request{Type: TypeLaunch, Points: MaxPoints * 10})
	if got := len(resp.Report.Points); got != MaxPoints+1 {
		t.Errorf("len(points) = %d, expected %d", got, MaxPoints+1)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.HTTPAddr = "127.0.0.1:0"
	srv := NewServer(cfg, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
