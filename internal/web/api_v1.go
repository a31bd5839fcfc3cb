package web

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
	"github.com/rook-computer/sharpmenu/internal/state"
)

const maxPreviewScale = 8

// FrameStore is the part of state.Store the API needs.
type FrameStore interface {
	Snapshot() state.Display
	FrameBuffer() *fb.Buffer
	Clear()
}

var _ FrameStore = (*state.Store)(nil)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type statusResponse struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Commands    int       `json:"commands"`
	Frames      int       `json:"frames"`
	LastCommand string    `json:"lastCommand"`
	LastStatus  string    `json:"lastStatus"`
	UpdatedAt   time.Time `json:"updatedAt"`
	BlackPixels int       `json:"blackPixels"`
}

func apiV1Router(store FrameStore) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, store) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFramePNG(w, r, store) })
	mux.HandleFunc("/clear", func(w http.ResponseWriter, r *http.Request) { handleClear(w, r, store) })
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, store FrameStore) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	snap := store.Snapshot()
	writeJSON(w, http.StatusOK, statusResponse{
		Width:       fb.Width,
		Height:      fb.Height,
		Commands:    snap.Commands,
		Frames:      snap.Frames,
		LastCommand: snap.LastCommand,
		LastStatus:  snap.LastStatus,
		UpdatedAt:   snap.UpdatedAt,
		BlackPixels: countBlack(snap.Frame),
	})
}

func handleFramePNG(w http.ResponseWriter, r *http.Request, store FrameStore) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	scale := 1
	if raw := r.URL.Query().Get("scale"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxPreviewScale {
			writeAPIError(w, http.StatusBadRequest, "bad_scale", fmt.Sprintf("scale must be 1..%d", maxPreviewScale))
			return
		}
		scale = parsed
	}

	frame := store.FrameBuffer()
	defer frame.Release()
	img := scaleFrame(render.Tint(frame), scale)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, img); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
	}
}

func handleClear(w http.ResponseWriter, r *http.Request, store FrameStore) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	store.Clear()
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// scaleFrame renders src into an RGBA image scale times larger.
func scaleFrame(src image.Image, scale int) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}

func countBlack(frame []byte) int {
	n := 0
	for _, b := range frame {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
