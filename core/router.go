package core

import (
	"net/http"

	"go.uber.org/zap"
)

const (
	IndexTemplate   = "index.html"
	WaitingTemplate = "waiting.html"

	indexFallback   = "<html><body><h1>Session Manager</h1><p>Service is running</p></body></html>"
	waitingFallback = "<html><body><h1>Waiting</h1></body></html>"
)

type Router struct {
	config   *Config
	resolver *Resolver
	logger   *zap.Logger
}

var NewRouter = func(config *Config, logger *zap.Logger) http.Handler {
	return &Router{
		config:   config,
		resolver: NewResolver(config),
		logger:   logger,
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.URL.Path {
	case "/health":
		serveHealth(w)
	case "/":
		r.servePage(w, IndexTemplate, indexFallback)
	case "/waiting":
		r.servePage(w, WaitingTemplate, waitingFallback)
	default:
		http.NotFound(w, req)
	}
}

func (r *Router) servePage(w http.ResponseWriter, name, fallback string) {
	page, err := r.resolver.Resolve(name, fallback)
	if err != nil {
		r.logger.Error("template resolve failed",
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if r.config.DebugHeaders {
		source := "fallback"
		if page.FromFile {
			source = "file"
		}
		w.Header().Set("X-Template-Source", source)
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write(page.Body)
}
