package httpapi

import (
	"github.com/gin-gonic/gin"
)

// Router owns the HTTP server and the set of registered controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	ginMode     string
}

// Config configures a Router.
type Config struct {
	Addr        string
	BaseURL     string
	GinMode     string
	Controllers []Controller
}

// NewRouter builds a Router from Config.
func NewRouter(cfg Config) *Router {
	return &Router{
		addr:        cfg.Addr,
		baseURL:     cfg.BaseURL,
		controllers: cfg.Controllers,
		ginMode:     cfg.GinMode,
	}
}

// Run starts the HTTP server, blocking until it exits.
func (r *Router) Run() error {
	gin.SetMode(r.ginMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), CorrelationID(), RequestLog())

	group := engine.Group(r.baseURL)
	public := group.Group("/v1")
	protected := group.Group("/v1")
	for _, c := range r.controllers {
		c.RegisterPublic(public)
		c.RegisterProtected(protected)
	}

	return engine.Run(r.addr)
}
