package server

import (
	"io"
	"net/http"

	"github.com/alkime/itranscript/internal/workflow"
	"github.com/gin-gonic/gin"
)

type stepView struct {
	Step        workflow.Step       `json:"step"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	Status      workflow.StepStatus `json:"status"`
	Clickable   bool                `json:"clickable"`
}

type workflowView struct {
	Policy string         `json:"policy"`
	State  workflow.State `json:"state"`
	Steps  []stepView     `json:"steps"`
}

func (s *Server) workflowView() workflowView {
	st := s.app.Store.State()
	p := s.app.Policy

	steps := make([]stepView, 0, len(workflow.Steps()))
	for _, step := range workflow.Steps() {
		steps = append(steps, stepView{
			Step:        step,
			Label:       step.Label(),
			Description: step.Description(),
			Status:      p.StepStatus(st, step),
			Clickable:   p.CanEnter(st, step),
		})
	}

	return workflowView{Policy: p.Name(), State: st, Steps: steps}
}

func (s *Server) handleWorkflow(c *gin.Context) {
	c.JSON(http.StatusOK, s.workflowView())
}

type navigateRequest struct {
	Step string `json:"step" binding:"required"`
}

// handleNavigate answers 200 either way; an unreachable step is reported
// with navigated=false rather than as an error.
func (s *Server) handleNavigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)

		return
	}

	step, err := workflow.ParseStep(req.Step)
	if err != nil {
		s.badRequest(c, err)

		return
	}

	ok := s.app.Navigate(step)
	c.JSON(http.StatusOK, gin.H{"navigated": ok, "state": s.app.Store.State()})
}

// handleEvents streams store changes as server-sent events, starting with
// the current state.
// eventBuffer is the per-client SSE subscription depth.
const eventBuffer = 32

func (s *Server) handleEvents(c *gin.Context) {
	events, cancel := s.app.Store.Subscribe(eventBuffer)
	defer func() {
		s.logger.Debug("event stream closed", "dropped_events", s.app.Store.DroppedEvents())
		cancel()
	}()

	c.SSEvent("state", s.app.Store.State())
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Kind), ev.State)

			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
