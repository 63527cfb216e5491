package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/metrics"
	"github.com/nguyentantai21042004/video-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/video-summarizer/internal/stager"
)

// Server is the upload UI in front of the pipeline.
type Server struct {
	stager         stager.Stager
	pipeline       pipeline.Pipeline
	metrics        metrics.Metrics
	metricsHandler http.Handler
	logger         logger.Logger
	router         *gin.Engine
}

// New wires the routes. A nil m disables metrics.
func New(s stager.Stager, p pipeline.Pipeline, m metrics.Metrics, log logger.Logger) *Server {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}

	srv := &Server{
		stager:         s,
		pipeline:       p,
		metrics:        m,
		metricsHandler: metrics.NewMetricsHandler(m),
		logger:         log,
	}
	srv.router = srv.routes()
	return srv
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestID)
	router.Use(s.metricsMiddleware)
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", s.handleIndex)
	router.POST("/summarize", s.handleSummarize)
	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(s.metricsHandler))

	return router
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
