package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/stager"
)

const uploadField = "video"

type summaryResponse struct {
	RequestID      string `json:"request_id"`
	File           string `json:"file"`
	TranscriptKind string `json:"transcript_kind"`
	Summary        string `json:"summary"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func acceptAttr() string {
	exts := make([]string, len(stager.AcceptedExtensions))
	for i, ext := range stager.AcceptedExtensions {
		exts[i] = "." + ext
	}
	return strings.Join(exts, ",")
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", pageData{Accept: acceptAttr()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSummarize stages the uploaded video and runs the pipeline on it.
func (s *Server) handleSummarize(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := c.FormFile(uploadField)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("missing %q upload: %w", uploadField, err))
		return
	}
	if !stager.IsVideoFile(fh.Filename) {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("unsupported file type %q, expected one of %s", fh.Filename, acceptAttr()))
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}

	videoPath, err := s.stager.Stage(ctx, stager.Blob{Name: fh.Filename, Data: data})
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	res, err := s.pipeline.Run(ctx, videoPath)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusOK, summaryResponse{
			RequestID:      logger.RequestID(ctx),
			File:           fh.Filename,
			TranscriptKind: res.Transcript.Kind.String(),
			Summary:        res.Summary,
		})
	default:
		c.HTML(http.StatusOK, "index", pageData{Accept: acceptAttr(), Summary: res.Summary})
	}
}

func (s *Server) respondError(c *gin.Context, status int, err error) {
	ctx := c.Request.Context()
	if status >= http.StatusInternalServerError {
		s.logger.Error(ctx, "Summarize request failed: %v", err)
	} else {
		s.logger.Warn(ctx, "Rejected summarize request: %v", err)
	}

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(status, errorResponse{RequestID: logger.RequestID(ctx), Error: err.Error()})
	default:
		c.HTML(status, "index", pageData{Accept: acceptAttr(), Error: err.Error()})
	}
}
