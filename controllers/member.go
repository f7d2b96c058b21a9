package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bffgym/pos-be/services"
)

type MemberController struct {
	ledger *services.Ledger
}

func NewMemberController(ledger *services.Ledger) *MemberController {
	return &MemberController{ledger: ledger}
}

type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (mc *MemberController) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := mc.ledger.AddMember(req.Name, req.Phone, req.Email, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Member added (+1 free credit)",
		"member":  member,
	})
}

func (mc *MemberController) GetMembers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"members": mc.ledger.ListMembers()})
}

// DeleteMember requires the UI to pass confirm=true: the confirmation
// dialog is the UI's job, the flag proves it happened. Unknown IDs are a
// no-op, reported as deleted=false.
func (mc *MemberController) DeleteMember(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deletion requires confirm=true"})
		return
	}

	deleted := mc.ledger.DeleteMember(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
