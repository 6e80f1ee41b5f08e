package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/models"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type contactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

func toContactResponse(message models.ContactMessage) contactResponse {
	return contactResponse{
		ID:      message.ID,
		Name:    message.Name,
		Email:   message.Email,
		Message: message.Message,
		Date:    message.CreatedAt.Format(time.DateOnly),
	}
}

func (h HandlerSet) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed"})
		return
	}

	record, err := h.contact.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": toContactResponse(record)})
}

func (h HandlerSet) ListContact(c *gin.Context) {
	messages := h.contact.List()
	resp := make([]contactResponse, 0, len(messages))
	for _, message := range messages {
		resp = append(resp, toContactResponse(message))
	}
	c.JSON(http.StatusOK, gin.H{"messages": resp})
}
