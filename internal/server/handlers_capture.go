package server

import (
	"fmt"
	"net/http"

	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/gin-gonic/gin"
)

type toggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (s *Server) captureView() gin.H {
	snap := s.app.Capture.Snapshot()

	return gin.H{
		"capture":   snap,
		"elapsed":   capture.FormatElapsed(snap.Elapsed),
		"recording": s.app.Store.IsRecording(),
		"ambient":   s.app.Store.IsAmbientMode(),
		"minimal":   s.app.Store.IsMinimalMode(),
	}
}

func (s *Server) handleCaptureState(c *gin.Context) {
	c.JSON(http.StatusOK, s.captureView())
}

func (s *Server) handleCaptureStart(c *gin.Context) {
	if err := s.app.Capture.Start(); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.captureView())
}

func (s *Server) handleCapturePause(c *gin.Context) {
	if err := s.app.Capture.Pause(); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.captureView())
}

func (s *Server) handleCaptureResume(c *gin.Context) {
	if err := s.app.Capture.Resume(); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.captureView())
}

func (s *Server) handleCaptureStop(c *gin.Context) {
	t, err := s.app.Capture.Stop()
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"transcript": t, "state": s.app.Store.State()})
}

func (s *Server) handleAmbientMode(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	s.app.Capture.SetAmbientMode(*req.Enabled)
	c.JSON(http.StatusOK, s.captureView())
}

func (s *Server) handleMinimalMode(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	if err := s.app.Capture.SetMinimalMode(*req.Enabled); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.captureView())
}

func (s *Server) uploadView() gin.H {
	return gin.H{
		"state":    s.app.Upload.State(),
		"progress": s.app.Upload.Progress(),
		"file":     s.app.Upload.File(),
		"accepted": capture.AcceptedAudioTypes(),
	}
}

func (s *Server) handleUploadState(c *gin.Context) {
	c.JSON(http.StatusOK, s.uploadView())
}

// handleUpload accepts a multipart "file" field. The content is sniffed;
// the declared Content-Type is only used when sniffing finds no audio.
func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		s.badRequest(c, fmt.Errorf("missing file field: %w", err))

		return
	}

	f, err := fh.Open()
	if err != nil {
		s.writeError(c, fmt.Errorf("open upload: %w", err))

		return
	}
	defer f.Close()

	mimeType, err := capture.DetectAudioType(f)
	if err != nil {
		s.logger.Debug("audio sniffing failed", "name", fh.Filename, "error", err)
		mimeType = fh.Header.Get("Content-Type")
	}

	audio := clinical.AudioFile{Name: fh.Filename, MIMEType: mimeType, Size: fh.Size}
	if err := s.app.Upload.Select(audio); err != nil {
		s.writeError(c, err)

		return
	}

	if err := s.app.Upload.Begin(); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusAccepted, s.uploadView())
}

func (s *Server) handleUploadClear(c *gin.Context) {
	s.app.Upload.Clear()
	c.JSON(http.StatusOK, s.uploadView())
}
