package server

import (
	"net/http"
	"strconv"

	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/summary"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleReview(c *gin.Context) {
	show, _ := strconv.ParseBool(c.DefaultQuery("showSuppressed", "false"))

	r, err := s.app.Review(show)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, r)
}

func (s *Server) handleReviewComplete(c *gin.Context) {
	if err := s.app.CompleteReview(); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.workflowView())
}

func (s *Server) handleTranscriptCopy(c *gin.Context) {
	text, err := s.app.CopyTranscript()
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (s *Server) handleTranscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transcriptions": fixtures.RecentTranscriptions()})
}

func (s *Server) handleTranscriptionOpen(c *gin.Context) {
	if err := s.app.OpenTranscription(c.Param("id")); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.workflowView())
}

func (s *Server) handleSummaryGet(c *gin.Context) {
	n := s.app.Note()
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no summary generated"})

		return
	}

	c.JSON(http.StatusOK, n)
}

func (s *Server) handleSummaryGenerate(c *gin.Context) {
	var req summary.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	note, err := s.app.GenerateSummary(req)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, note)
}

type noteEditRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleSummaryEdit(c *gin.Context) {
	var req noteEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	note, err := s.app.EditNote(req.Content)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, note)
}

func (s *Server) handleSummaryCopy(c *gin.Context) {
	text, err := s.app.CopySummary()
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (s *Server) handleSummaryFinalize(c *gin.Context) {
	if err := s.app.FinalizeSummary(); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.workflowView())
}

func (s *Server) handleSummaryHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summaries": s.app.Summaries.History(c.Query("patientId"))})
}

func (s *Server) handleCorrectionsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"corrections": s.app.Corrections.Search(c.Query("q"))})
}

type correctionRequest struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

func (s *Server) handleCorrectionAdd(c *gin.Context) {
	var req correctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	e, err := s.app.Corrections.Add(req.Original, req.Corrected)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, e)
}

func (s *Server) handleCorrectionDelete(c *gin.Context) {
	if err := s.app.Corrections.Delete(c.Param("id")); err != nil {
		s.writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleCorrectionsExport(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="corrections.json"`)
	c.Header("Content-Type", "application/json")

	if err := s.app.Corrections.Export(c.Writer); err != nil {
		s.logger.Error("export corrections", "error", err)
	}
}

func (s *Server) handleCorrectionsImport(c *gin.Context) {
	added, err := s.app.Corrections.Import(c.Request.Body)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added})
}
