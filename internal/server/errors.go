package server

import (
	"errors"
	"net/http"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/gin-gonic/gin"
)

// conflicts are errors caused by the session being in the wrong state for
// the request.
var conflicts = []error{
	capture.ErrAlreadyRecording,
	capture.ErrNotRecording,
	capture.ErrUploadInProgress,
	capture.ErrNoFileSelected,
	app.ErrNoTranscript,
	app.ErrNoSummary,
}

// writeError maps err onto a status code and a JSON body.
func (s *Server) writeError(c *gin.Context, err error) {
	if verr, ok := validation.As(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "field": verr.Field})

		return
	}

	if app.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return
	}

	for _, target := range conflicts {
		if errors.Is(err, target) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

			return
		}
	}

	s.logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
