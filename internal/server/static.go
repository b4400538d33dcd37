package server

import (
	"net/http"
	"os"
	"sync"

	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

// defaultHomePage is served when no home file is configured or the
// configured file cannot be read.
const defaultHomePage = `<!DOCTYPE html>
<html>
<head><title>Catalog</title></head>
<body>
<h1>Catalog Server</h1>
<p>Browse the catalog at <a href="/api">/api</a>.</p>
</body>
</html>
`

// notFoundBody is the body served on unmatched paths.
const notFoundBody = "404 page not found\n"

// StaticPage serves fixed content with a fixed status and content type.
// The body can be swapped at runtime by configuration reload.
type StaticPage struct {
	mu          sync.RWMutex
	body        []byte
	contentType string
	status      int
}

// NewStaticPage creates a static page responder.
func NewStaticPage(body []byte, contentType string, status int) *StaticPage {
	return &StaticPage{
		body:        body,
		contentType: contentType,
		status:      status,
	}
}

// NewHomePage creates the home page responder. When path is non-empty
// the file content is used; a missing or unreadable file falls back to
// the built-in page with a warning.
func NewHomePage(path string, logger observability.Logger) *StaticPage {
	page := NewStaticPage([]byte(defaultHomePage), "text/html; charset=utf-8", http.StatusOK)
	if path != "" {
		page.LoadFile(path, logger)
	}
	return page
}

// LoadFile replaces the page body with the content of the given file.
// On failure the current body is kept.
func (p *StaticPage) LoadFile(path string, logger observability.Logger) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated config
	if err != nil {
		logger.Warn("failed to read static page, keeping current content",
			observability.String("path", path),
			observability.Error(err),
		)
		return
	}
	p.SetBody(data)
}

// SetBody replaces the page body.
func (p *StaticPage) SetBody(body []byte) {
	p.mu.Lock()
	p.body = body
	p.mu.Unlock()
}

// Body returns the current page body.
func (p *StaticPage) Body() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.body
}

// ServeHTTP implements http.Handler.
func (p *StaticPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.RLock()
	body, contentType, status := p.body, p.contentType, p.status
	p.mu.RUnlock()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// NotFoundHandler returns the responder for unmatched paths: a fixed
// text body with status 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(notFoundBody))
	})
}
