// Package server is the HTTP shell around the match service. It owns the
// mapping from match failures to transport status codes; the core never
// sees HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/matching"
)

// Matcher is the single operation the shell needs from the core.
type Matcher interface {
	Match(ctx context.Context, profileID string) (*matching.Result, error)
}

type Server struct {
	matcher Matcher
	logger  *zap.Logger
}

func New(matcher Matcher, logger *zap.Logger) *Server {
	return &Server{
		matcher: matcher,
		logger:  logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), cors(), s.requestLogger())

	r.GET("/", s.health)
	r.POST("/match", s.match)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Run serves the router until the listener fails.
func (s *Server) Run(address string) error {
	s.logger.Info("starting http server", zap.String("address", address))
	return s.SetupRouter().Run(address)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "interlink matcher is running"})
}

func (s *Server) match(c *gin.Context) {
	profileID := c.Query("student_id")
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id is required"})
		return
	}

	result, err := s.matcher.Match(c.Request.Context(), profileID)
	if err != nil {
		s.writeMatchError(c, profileID, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) writeMatchError(c *gin.Context, profileID string, err error) {
	switch {
	case errors.Is(err, matching.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("no student found with id %s", profileID),
		})
	case errors.Is(err, matching.ErrNoCandidates):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no internships found",
		})
	default:
		s.logger.Error("match request failed",
			zap.String("student_id", profileID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": fmt.Sprintf("database error fetching student: %s", err),
		})
	}
}
