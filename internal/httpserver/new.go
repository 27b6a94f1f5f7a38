package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notes-client/internal/middleware"
	webDelivery "notes-client/internal/note/delivery/web"
	"notes-client/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	// Notes frontend
	notesHandler webDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string // empty listens on all interfaces
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	NotesHandler webDelivery.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		host:         cfg.Host,
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		middleware:   cfg.Middleware,
		notesHandler: cfg.NotesHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Note ids are path-escaped in delete actions.
	srv.gin.UseRawPath = true
	srv.gin.UnescapePathValues = true

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
