package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bffgym/pos-be/models"
	"github.com/bffgym/pos-be/services"
)

type PaymentController struct {
	ledger *services.Ledger
}

func NewPaymentController(ledger *services.Ledger) *PaymentController {
	return &PaymentController{ledger: ledger}
}

type ApplyPaymentRequest struct {
	Member string `json:"member" binding:"required"` // free text, resolved server-side
	Pack   string `json:"pack" binding:"required"`   // single | ten | twenty (10/20 accepted)
}

func (pc *PaymentController) ApplyPayment(c *gin.Context) {
	var req ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pack, ok := models.ParsePackKind(req.Pack)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown pack: " + req.Pack})
		return
	}

	tx, err := pc.ledger.ApplyPayment(req.Member, pack)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "select a valid member"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Payment applied",
		"transaction": tx,
	})
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	txs := pc.ledger.ListTransactions()
	rows := make([]gin.H, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, gin.H{
			"ts":         t.Timestamp,
			"ts_display": formatPerth(t.Timestamp),
			"type":       t.Pack,
			"memberId":   t.MemberID,
			"memberName": t.MemberName,
			"amount":     t.Amount,
			"credits":    t.Credits,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transactions": rows})
}

// ClearTransactions erases the local display history only; nothing is
// retracted from the queue or the remote sheet.
func (pc *PaymentController) ClearTransactions(c *gin.Context) {
	pc.ledger.ClearTransactions()
	c.JSON(http.StatusOK, gin.H{"message": "Recent transactions cleared (local only)"})
}
