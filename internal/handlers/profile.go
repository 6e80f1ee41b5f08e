package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/models"
)

type updateProfileRequest struct {
	Bio    *string `json:"bio"`
	Google *bool   `json:"google"`
	GitHub *bool   `json:"github"`
}

// UpdateProfile merges mutable fields into the caller's own account.
func (h HandlerSet) UpdateProfile(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed"})
		return
	}

	updated, err := h.identity.UpdateProfile(account.ID, account.ID, models.ProfileUpdate{
		Bio:    req.Bio,
		Google: req.Google,
		GitHub: req.GitHub,
	})
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toAccountResponse(updated)})
}
