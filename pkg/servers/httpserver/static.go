package httpserver

import (
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const indexFile = "index.html"

// staticHandler отдает собранный SPA: существующие файлы как есть,
// для остальных путей index.html (клиентский роутинг), промах по ассетам - 404
type staticHandler struct {
	assets     fs.FS
	fileServer http.Handler
	mount      string
}

func newStaticHandler(dir, mount string) http.Handler {
	if strings.TrimSpace(dir) == "" {
		return http.NotFoundHandler()
	}

	assets := os.DirFS(dir)
	return &staticHandler{
		assets:     assets,
		fileServer: http.FileServer(http.FS(assets)),
		mount:      mount,
	}
}

func (s *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	requestPath := strings.TrimPrefix(r.URL.Path, s.mount)
	cleanPath := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
	if cleanPath == "" || cleanPath == indexFile {
		s.serveIndex(w, r)
		return
	}

	if info, err := fs.Stat(s.assets, cleanPath); err == nil && !info.IsDir() {
		r2 := r.Clone(r.Context())
		r2.URL.Path = "/" + cleanPath
		r2.URL.RawPath = ""
		s.fileServer.ServeHTTP(w, r2)
		return
	}

	baseName := path.Base(cleanPath)
	if strings.HasPrefix(cleanPath, "assets/") || strings.Contains(baseName, ".") {
		http.NotFound(w, r)
		return
	}

	s.serveIndex(w, r)
}

func (s *staticHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	file, err := s.assets.Open(indexFile)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.Copy(w, file)
}
