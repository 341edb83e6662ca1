package animation

import (
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testPlayer(t *testing.T) *Player {
	t.Helper()
	plan := &Plan{
		Times: []float64{-2, -1, 0},
		Frames: []Frame{
			{Index: 1, Time: -1, Hold: 4},
			{Index: 2, Time: 0},
		},
		FreezeIndex: 1,
	}
	frames := []*image.RGBA{
		solidFrame(color.RGBA{R: 255, A: 255}),
		solidFrame(color.RGBA{B: 255, A: 255}),
	}
	p, err := NewPlayer(plan, frames, 15)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestPlayerToggle(t *testing.T) {
	p := testPlayer(t)
	if p.Paused() {
		t.Fatal("player starts paused")
	}
	if !p.Toggle() {
		t.Fatal("first toggle should pause")
	}
	if !p.Paused() {
		t.Fatal("Paused disagrees with Toggle")
	}
	if p.Toggle() {
		t.Fatal("second toggle should resume")
	}
}

func TestPlayerFrameHandler(t *testing.T) {
	p := testPlayer(t)

	rec := httptest.NewRecorder()
	p.handleFrame(rec, httptest.NewRequest(http.MethodGet, "/frame/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}

	for _, path := range []string{"/frame/-1", "/frame/2", "/frame/x"} {
		rec := httptest.NewRecorder()
		p.handleFrame(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status %d, want 404", path, rec.Code)
		}
	}
}

func TestPlayerMetaHandler(t *testing.T) {
	p := testPlayer(t)
	rec := httptest.NewRecorder()
	p.handleMeta(rec, httptest.NewRequest(http.MethodGet, "/meta", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var meta struct {
		FPS    int       `json:"fps"`
		Holds  []int     `json:"holds"`
		Times  []float64 `json:"times"`
		Paused bool      `json:"paused"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&meta); err != nil {
		t.Fatalf("decoding meta: %v", err)
	}
	if meta.FPS != 15 {
		t.Errorf("fps: got %d", meta.FPS)
	}
	if len(meta.Holds) != 2 || meta.Holds[0] != 4 || meta.Holds[1] != 0 {
		t.Errorf("holds: got %v", meta.Holds)
	}
	if len(meta.Times) != 2 || meta.Times[0] != -1 {
		t.Errorf("times: got %v", meta.Times)
	}
	if meta.Paused {
		t.Error("fresh player reports paused")
	}
}

func TestPlayerToggleHandler(t *testing.T) {
	p := testPlayer(t)

	rec := httptest.NewRecorder()
	p.handleToggle(rec, httptest.NewRequest(http.MethodGet, "/toggle", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET toggle: status %d, want 405", rec.Code)
	}

	rec = httptest.NewRecorder()
	p.handleToggle(rec, httptest.NewRequest(http.MethodPost, "/toggle", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("POST toggle: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "true") {
		t.Errorf("toggle response %q", rec.Body.String())
	}
	if !p.Paused() {
		t.Error("toggle handler did not pause the player")
	}
}

func TestPlayerIndexHandler(t *testing.T) {
	p := testPlayer(t)

	rec := httptest.NewRecorder()
	p.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/frame/0") {
		t.Error("index page does not load the first frame")
	}

	rec = httptest.NewRecorder()
	p.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path: status %d, want 404", rec.Code)
	}
}
