package web

import (
	"net/http"
	"os"
	"path/filepath"
)

// RegisterAPIV1 registers the preview API under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, store FrameStore) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(store)))
}

// RegisterUI serves either the built-in preview page or a directory.
func RegisterUI(mux *http.ServeMux, staticDir string) {
	mux.Handle("/", StaticUIHandler(staticDir))
}

// NewDefaultMux builds the simulator mux:
// - /api/v1/* for the API
// - / for the preview page
func NewDefaultMux(staticDir string, store FrameStore) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, store)
	RegisterUI(mux, staticDir)
	return mux
}

const previewPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>sharpmenu display</title></head>
<body style="background:#444;margin:2em">
<img id="frame" src="/api/v1/frame.png?scale=2" width="800" height="480" alt="display">
<script>
setInterval(function () {
  document.getElementById("frame").src = "/api/v1/frame.png?scale=2&t=" + Date.now();
}, 250);
</script>
</body>
</html>
`

// StaticUIHandler serves staticDir at "/", or the built-in preview page
// when staticDir is empty or missing.
func StaticUIHandler(staticDir string) http.Handler {
	if staticDir != "" {
		if st, err := os.Stat(staticDir); err == nil && st.IsDir() {
			fileServer := http.FileServer(http.Dir(staticDir))
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Clean path to avoid oddities.
				r.URL.Path = filepath.ToSlash(filepath.Clean("/" + r.URL.Path))
				fileServer.ServeHTTP(w, r)
			})
		}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(previewPage))
	})
}
