// ABOUTME: Development reverse proxy for the /api prefix
// ABOUTME: Forwards auth headers and answers with structured JSON when the backend is down
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
)

// Proxy forwards /api requests to a backend origin during development,
// so frontends and scripts can target one local port.
type Proxy struct {
	target *url.URL
	proxy  *httputil.ReverseProxy
}

// NewProxy builds a proxy for the backend at origin, e.g.
// http://localhost:9000.
func NewProxy(origin string) (*Proxy, error) {
	target, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid backend origin %q: %w", origin, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("backend origin %q must include scheme and host", origin)
	}

	p := &Proxy{target: target}
	rp := httputil.NewSingleHostReverseProxy(target)

	baseDirector := rp.Director
	rp.Director = func(req *http.Request) {
		baseDirector(req)
		// Authorization and cookies pass through untouched; the backend
		// owns auth even in dev.
		req.Host = target.Host
	}
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("proxy: backend %s unreachable: %v", target, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"detail": "backend unavailable",
			"origin": target.String(),
		})
	}

	p.proxy = rp
	return p, nil
}

// ServeHTTP proxies /api paths and rejects everything else with 404.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, "/api") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
		return
	}
	p.proxy.ServeHTTP(w, r)
}

// Serve runs the proxy on port until the listener fails.
func (p *Proxy) Serve(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Proxying /api on http://localhost%s to %s", addr, p.target)
	return http.ListenAndServe(addr, p)
}
