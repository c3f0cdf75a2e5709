// Package server renders the extraction report as an interactive web table
// and a small JSON API, and serves the source documents so the table's
// hyperlinks resolve.
package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynguyendang/docdates/internal/manager"
)

// Server holds the state for the report web server.
type Server struct {
	manager *manager.ReportManager
	docsDir string
	router  *gin.Engine
}

// NewServer creates a new Server instance. docsDir is the directory the
// source document links resolve against; empty disables file serving.
func NewServer(mgr *manager.ReportManager, docsDir string) *Server {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("report").Parse(reportTemplate)))

	s := &Server{
		manager: mgr,
		docsDir: docsDir,
		router:  r,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/", s.handleIndex)
	s.router.GET("/v1/report", s.handleReport)
	s.router.GET("/v1/records", s.handleRecord)

	// Unmatched paths fall through to the document directory so the
	// table's relative links open the actual files.
	if s.docsDir != "" {
		s.router.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.docsDir))))
	}
}

// Health check
func (s *Server) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}
