package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/models"
	"miniblog/api/internal/store"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type accountResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Bio      string            `json:"bio"`
	Role     string            `json:"role"`
	JoinDate string            `json:"joinDate"`
	OAuth    models.OAuthLinks `json:"oauth"`
}

func toAccountResponse(account models.Account) accountResponse {
	return accountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Bio:      account.Bio,
		Role:     string(account.Role()),
		JoinDate: account.JoinDate.Format(time.DateOnly),
		OAuth:    account.OAuth,
	}
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// One shape for unknown user and wrong password alike.
		if errors.Is(err, store.ErrInvalidCredentials) || errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": result.AccessToken,
		"user":        toAccountResponse(result.Account),
	})
}

func (h HandlerSet) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h HandlerSet) Me(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toAccountResponse(account)})
}

// Session reports the process-wide session role so the rendering side can
// decide which actions to offer before any credentials are presented.
func (h HandlerSet) Session(c *gin.Context) {
	resp := gin.H{"role": string(h.sessions.CurrentRole())}
	if account, ok := h.sessions.Current(); ok {
		resp["user"] = toAccountResponse(account)
	}
	c.JSON(http.StatusOK, resp)
}
