package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bffgym/pos-be/services"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// GetSessions returns the timetable grid grouped by day, in display order.
func (sc *SessionController) GetSessions(c *gin.Context) {
	type column struct {
		Day   string   `json:"day"`
		Times []string `json:"times"`
	}

	var cols []column
	for _, slot := range sc.sessions.Slots() {
		if len(cols) == 0 || cols[len(cols)-1].Day != slot.Day {
			cols = append(cols, column{Day: slot.Day})
		}
		cols[len(cols)-1].Times = append(cols[len(cols)-1].Times, slot.Time)
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": cols,
		"selected": sc.sessions.Current(),
	})
}

func (sc *SessionController) GetSelected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"selected": sc.sessions.Current()})
}

type SelectSessionRequest struct {
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (sc *SessionController) SelectSession(c *gin.Context) {
	var req SelectSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selected, err := sc.sessions.Select(req.Day, req.Time)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSession) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": selected})
}
