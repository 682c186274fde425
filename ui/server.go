package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"districtmap/app"
	"districtmap/domain/district"
	"districtmap/internal/errors"
	"districtmap/internal/logging"

	"github.com/gin-gonic/gin"
)

var logger = logging.New("Server")

// Server previews a lookup document the way the static site fetches it
type Server struct {
	router  *gin.Engine
	lookup  *app.Lookup
	docName string
	siteDir string
}

// ServerOptions configures the preview server
type ServerOptions struct {
	DocName string // path segment the document is served under, e.g. district_data.json
	SiteDir string // optional directory of static site files
	GinMode string
}

// reservedPaths are first path segments the API routes already own
var reservedPaths = map[string]bool{"healthz": true, "api": true}

// NewServer creates a preview server for lookup. DocName must be a plain
// path segment: gin reads ':' and '*' as parameters.
func NewServer(lookup *app.Lookup, opts ServerOptions) (*Server, error) {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.DocName == "" {
		opts.DocName = "district_data.json"
	}
	if err := validateDocName(opts.DocName); err != nil {
		return nil, err
	}

	s := &Server{
		router:  gin.Default(),
		lookup:  lookup,
		docName: opts.DocName,
		siteDir: opts.SiteDir,
	}
	s.setupRoutes()
	return s, nil
}

func validateDocName(name string) error {
	if strings.ContainsAny(name, ":*/") || reservedPaths[name] {
		return errors.InvalidInput(fmt.Sprintf("cannot serve data file as %q; rename it", name))
	}
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/"+s.docName, s.handleDocument)

	s.router.GET("/api/counties", s.handleCounties)
	s.router.GET("/api/counties/:name", s.handleCounty)
	s.router.GET("/api/districts/:category/:number", s.handleDistrict)

	if s.siteDir != "" {
		logger.Info("Serving site files from %s", s.siteDir)
		s.router.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.siteDir))))
	} else {
		s.router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	logger.Warn("Serving %s on http://%s", s.docName, addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"counties": len(s.lookup.Counties()),
	})
}

func (s *Server) handleDocument(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", s.lookup.Document())
}

func (s *Server) handleCounties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"counties": s.lookup.Counties()})
}

func (s *Server) handleCounty(c *gin.Context) {
	result, err := s.lookup.County(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDistrict(c *gin.Context) {
	category, ok := district.ParseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown district category"})
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "district number must be an integer"})
		return
	}

	counties, err := s.lookup.District(category, number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"district": number,
		"counties": counties,
	})
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
