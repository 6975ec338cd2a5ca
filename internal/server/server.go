package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-studio/internal/export"
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
	"github.com/rezonia/invoice-studio/internal/raster"
	"github.com/rezonia/invoice-studio/internal/render"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config     *Config
	router     *gin.Engine
	layout     render.Layout
	dispatcher *export.Dispatcher
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	layout := render.DefaultLayout()

	// The HTTP response is the delivery channel, so the dispatcher only
	// generates; no platform channel is ever invoked.
	dispatcher := export.NewDispatcher(export.DiskPlatform{}, export.WithLayout(layout))

	s := &Server{
		config:     config,
		router:     router,
		layout:     layout,
		dispatcher: dispatcher,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoice/compute", s.handleCompute)
		v1.POST("/invoice/render", s.handleRender)
		v1.POST("/invoice/export", s.handleExport)
		v1.POST("/invoice/link", s.handleLink)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// decodeInvoice reads the invoice document from the request body.
func decodeInvoice(c *gin.Context) (*model.Invoice, bool) {
	inv, err := model.DecodeInvoice(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice document", Details: err.Error()})
		return nil, false
	}
	return inv, true
}

func (s *Server) handleCompute(c *gin.Context) {
	inv, ok := decodeInvoice(c)
	if !ok {
		return
	}

	resp := ComputeResponse{Total: money.Format(inv.Total())}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, ComputedItem{
			ID:          it.ID.String(),
			Description: it.Description,
			Amount:      money.Format(it.Amount),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRender(c *gin.Context) {
	inv, ok := decodeInvoice(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	page := render.Render(inv.Snapshot(), s.layout)
	bmp, err := raster.New().Rasterize(ctx, page, s.layout)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "capture failed", Details: err.Error()})
		return
	}

	data, err := bmp.EncodePNG()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "encoding failed", Details: err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

func (s *Server) handleExport(c *gin.Context) {
	inv, ok := decodeInvoice(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	artifact, err := s.dispatcher.Generate(ctx, inv.Snapshot())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "export failed", Details: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.Name))
	c.Data(http.StatusOK, artifact.MIME, artifact.Data)
}

func (s *Server) handleLink(c *gin.Context) {
	inv, ok := decodeInvoice(c)
	if !ok {
		return
	}

	link, err := export.MessageLink(inv)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "link failed", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, LinkResponse{URL: link, Summary: inv.Summary()})
}
