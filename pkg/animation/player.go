package animation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// Player serves the precomputed animation in a local web viewer with
// click-to-pause. The paused flag is explicit state owned by the player
// and toggled through the handler, not a process-wide variable.
type Player struct {
	plan   *Plan
	frames [][]byte // PNG-encoded
	fps    int

	mu     sync.Mutex
	paused bool
}

// NewPlayer encodes the frames for serving.
func NewPlayer(plan *Plan, frames []*image.RGBA, fps int) (*Player, error) {
	p := &Player{plan: plan, fps: fps, frames: make([][]byte, len(frames))}
	for i, img := range frames {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding frame %d: %w", i, err)
		}
		p.frames[i] = buf.Bytes()
	}
	return p, nil
}

// Toggle flips the paused state and returns the new value.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = !p.paused
	return p.paused
}

// Paused reports the current pause state.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// ListenAndServe blocks serving the viewer on addr.
func (p *Player) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", p.handleIndex)
	mux.HandleFunc("/frame/", p.handleFrame)
	mux.HandleFunc("/meta", p.handleMeta)
	mux.HandleFunc("/toggle", p.handleToggle)
	log.Printf("Serving animation on http://%s (click the frame to pause/resume)", addr)
	return http.ListenAndServe(addr, mux)
}

func (p *Player) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viewerTmpl.Execute(w, map[string]any{
		"Frames": len(p.frames),
		"FPS":    p.fps,
	}); err != nil {
		log.Printf("viewer template: %v", err)
	}
}

func (p *Player) handleFrame(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/frame/"))
	if err != nil || idx < 0 || idx >= len(p.frames) {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "max-age=3600")
	w.Write(p.frames[idx])
}

// handleMeta exposes the frame schedule: per-frame display counts so the
// client honors holds, plus the loop delay.
func (p *Player) handleMeta(w http.ResponseWriter, r *http.Request) {
	holds := make([]int, len(p.plan.Frames))
	times := make([]float64, len(p.plan.Frames))
	for i, f := range p.plan.Frames {
		holds[i] = f.Hold
		times[i] = f.Time
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"fps":    p.fps,
		"holds":  holds,
		"times":  times,
		"paused": p.Paused(),
	})
}

func (p *Player) handleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"paused": p.Toggle()})
}

var viewerTmpl = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>bbh-scattering</title>
<style>
body{background:#111;color:#ccc;font-family:monospace;text-align:center;padding-top:24px}
img{image-rendering:auto;cursor:pointer;border:1px solid #333}
.hint{margin-top:8px;font-size:12px;color:#777}
</style>
</head>
<body>
<img id="frame" src="/frame/0" alt="animation frame">
<div class="hint">click to pause / resume</div>
<script>
const nFrames = {{.Frames}};
const interval = 1000 / {{.FPS}};
let idx = 0, paused = false, holds = [];

fetch('/meta').then(r => r.json()).then(m => { holds = m.holds; paused = m.paused; });

const img = document.getElementById('frame');
img.addEventListener('click', () => {
  fetch('/toggle', {method: 'POST'}).then(r => r.json()).then(m => { paused = m.paused; });
});

let hold = 0;
setInterval(() => {
  if (paused) return;
  if (hold > 0) { hold--; return; }
  idx = (idx + 1) % nFrames;
  hold = holds[idx] || 0;
  img.src = '/frame/' + idx;
}, interval);
</script>
</body>
</html>
`))
