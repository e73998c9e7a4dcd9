package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// IssueTokenHandler issues a customer bearer token. Identity verification is
// an external collaborator; this thin wrapper only turns a customer id into
// a signed token the booking endpoints accept.
func IssueTokenHandler(c *gin.Context) {
	var input struct {
		CustomerID string `json:"customer_id" binding:"required"`
		Email      string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := utils.GenerateToken(input.CustomerID, input.Email, 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": int((24 * time.Hour).Seconds())})
}
