package server

import (
	"net/http"

	"github.com/alkime/itranscript/internal/patient"
	"github.com/gin-gonic/gin"
)

func (s *Server) handlePatientSearch(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patients": s.app.Patients.Search(c.Query("q"))})
}

func (s *Server) handlePatientCreate(c *gin.Context) {
	var req patient.NewPatient
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	p, err := s.app.Patients.Create(req)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, p)
}

func (s *Server) handlePatientGet(c *gin.Context) {
	d, err := s.app.Demographics(c.Param("id"))
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, d)
}

func (s *Server) handlePatientOpen(c *gin.Context) {
	if _, err := s.app.OpenPatient(c.Param("id")); err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, s.workflowView())
}

func (s *Server) handleGenerateMRN(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"medicalId": s.app.Patients.GenerateMRN()})
}

func (s *Server) handleLinked(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patient": s.app.Linker.Linked()})
}

type linkRequest struct {
	PatientID string `json:"patientId" binding:"required"`
}

func (s *Server) handleLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	p, err := s.app.Linker.Link(req.PatientID)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": p})
}

func (s *Server) handleUnlink(c *gin.Context) {
	s.app.Linker.Unlink()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCreateAndLink(c *gin.Context) {
	var req patient.NewPatient
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	p, err := s.app.Linker.CreateAndLink(req)
	if err != nil {
		s.writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{"patient": p})
}
