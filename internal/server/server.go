// Package server wires the gin engine, routes and embedded frontend.
package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Wesls1990/psltomtd/internal/config"
	"github.com/Wesls1990/psltomtd/internal/importer"
	"github.com/Wesls1990/psltomtd/internal/parser"
	"github.com/Wesls1990/psltomtd/internal/server/handlers"
	"github.com/Wesls1990/psltomtd/internal/store"
)

//go:embed static
var staticFiles embed.FS

// Server HTTP server
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *handlers.Handlers
}

// NewServer builds the server: mapping tables, import history store,
// handlers and routes.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	rules, err := parser.LoadRuleset(cfg.Engine.MappingPath)
	if err != nil {
		log.Fatalf("Failed to load mapping tables: %v", err)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	// History is audit only; run without it rather than refuse to start.
	dbPath := filepath.Join(dataDir, "psltomtd.db")
	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Printf("Import history unavailable: %v", err)
		sqliteStore = nil
	}

	api := handlers.New(importer.New(rules), sqliteStore, cfg.Engine.PreviewLines)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		api:    api,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.POST("/parse", s.api.Parse)
		api.POST("/export", s.api.Export)
		api.GET("/imports", s.api.ListImports)
		api.GET("/status", s.api.Status)
	}

	sub, _ := fs.Sub(staticFiles, "static")
	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases server resources.
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
