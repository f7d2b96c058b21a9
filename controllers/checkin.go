package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bffgym/pos-be/services"
)

type CheckinController struct {
	ledger   *services.Ledger
	sessions *services.SessionService
}

func NewCheckinController(ledger *services.Ledger, sessions *services.SessionService) *CheckinController {
	return &CheckinController{ledger: ledger, sessions: sessions}
}

type CheckInRequest struct {
	Member  string `json:"member" binding:"required"`
	Session string `json:"session"` // defaults to the selected session
	TopUp   bool   `json:"top_up"`  // UI confirmed the zero-credit single purchase
}

func (cc *CheckinController) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := strings.TrimSpace(req.Session)
	if session == "" {
		session = cc.sessions.Current()
	} else if !cc.sessions.Known(session) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown session: " + session})
		return
	}

	res, err := cc.ledger.CheckIn(req.Member, session, req.TopUp)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoSessionSelected):
			c.JSON(http.StatusConflict, gin.H{"error": "select a session"})
		case errors.Is(err, services.ErrMemberNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "select a valid member"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if res.NeedsTopUp {
		// Not an error: the member has no credits and the UI has not
		// confirmed the single-class purchase yet. Nothing was changed.
		c.JSON(http.StatusPaymentRequired, gin.H{
			"needs_top_up": true,
			"member":       res.Member,
			"message":      res.Member.Name + " has 0 credits. Add a single class ($20)?",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Checked in",
		"member":     res.Member,
		"attendance": res.Attendance,
		"topped_up":  res.ToppedUp,
	})
}

func (cc *CheckinController) GetCheckIns(c *gin.Context) {
	records := cc.ledger.ListAttendance()
	rows := make([]gin.H, 0, len(records))
	for _, a := range records {
		rows = append(rows, gin.H{
			"ts":         a.Timestamp,
			"ts_display": formatPerth(a.Timestamp),
			"session":    a.Session,
			"memberId":   a.MemberID,
			"memberName": a.MemberName,
		})
	}
	c.JSON(http.StatusOK, gin.H{"attendance": rows})
}
