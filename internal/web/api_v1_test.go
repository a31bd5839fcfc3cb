package web

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
	"github.com/rook-computer/sharpmenu/internal/state"
)

func newTestMux(t *testing.T) (*http.ServeMux, *state.Store) {
	t.Helper()
	store := state.NewStore()
	return NewDefaultMux("", store), store
}

func storeWithPixel(store *state.Store, x, y int) {
	frame := fb.New()
	frame.SetPixel(x, y, true)
	store.SetFrame(frame.Bytes())
}

func TestStatus(t *testing.T) {
	mux, store := newTestMux(t)
	storeWithPixel(store, 3, 4)
	store.RecordCommand("RAWBUF", "OK")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var got statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fb.Width, got.Width)
	assert.Equal(t, fb.Height, got.Height)
	assert.Equal(t, 1, got.Commands)
	assert.Equal(t, 1, got.Frames)
	assert.Equal(t, "RAWBUF", got.LastCommand)
	assert.Equal(t, "OK", got.LastStatus)
	assert.Equal(t, 1, got.BlackPixels)
}

func TestStatusRejectsPost(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/status", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var got apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "method_not_allowed", got.Error)
}

func TestFramePNG(t *testing.T) {
	mux, store := newTestMux(t)
	storeWithPixel(store, 10, 20)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frame.png?scale=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2*fb.Width, img.Bounds().Dx())
	assert.Equal(t, 2*fb.Height, img.Bounds().Dy())

	r, g, b, _ := img.At(21, 41).RGBA()
	fr, fg, fbl, _ := render.Foreground.RGBA()
	assert.Equal(t, []uint32{fr, fg, fbl}, []uint32{r, g, b})

	r, g, b, _ = img.At(0, 0).RGBA()
	br, bg, bb, _ := render.Background.RGBA()
	assert.Equal(t, []uint32{br, bg, bb}, []uint32{r, g, b})
}

func TestFramePNGBadScale(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, q := range []string{"0", "9", "abc"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frame.png?scale="+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "scale=%s", q)
	}
}

func TestClear(t *testing.T) {
	mux, store := newTestMux(t)
	storeWithPixel(store, 1, 1)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/clear", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/clear", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, make([]byte, fb.Size), store.Snapshot().Frame)
}

func TestPreviewPage(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/frame.png")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDevCORS(t *testing.T) {
	mux, _ := newTestMux(t)
	h := WithDevCORS(mux)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/status", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, "")
	t.Setenv(EnvDevMode, "")
	cfg, err := DefaultServerConfigFromEnv(":9000")
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: ":9000"}, cfg)

	t.Setenv(EnvListenAddr, "127.0.0.1:1234")
	t.Setenv(EnvDevMode, "true")
	cfg, err = DefaultServerConfigFromEnv(":9000")
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: "127.0.0.1:1234", DevMode: true}, cfg)

	t.Setenv(EnvDevMode, "sometimes")
	_, err = DefaultServerConfigFromEnv(":9000")
	assert.Error(t, err)
}

func TestHTTPServerStartStop(t *testing.T) {
	_, store := newTestMux(t)
	srv := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"})
	srv.Handler = NewDefaultMux("", store)
	require.NoError(t, srv.Start(t.Context()))

	resp, err := http.Get("http://" + srv.Addr + "/api/v1/status")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Stop())
	require.NoError(t, srv.Stop())
	assert.Error(t, srv.Start(t.Context()))
}
