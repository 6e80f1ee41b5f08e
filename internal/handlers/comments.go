package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/models"
)

type commentResponse struct {
	ID           string `json:"id"`
	ArticleID    string `json:"articleId"`
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	Content      string `json:"content"`
	Date         string `json:"date"`
	Reported     bool   `json:"reported"`
	ReportReason string `json:"reportReason,omitempty"`
	Approved     *bool  `json:"approved"`
}

func toCommentResponse(comment models.Comment) commentResponse {
	return commentResponse{
		ID:           comment.ID,
		ArticleID:    comment.ArticleID,
		UserID:       comment.AuthorID,
		Username:     comment.AuthorName,
		Content:      comment.Body,
		Date:         comment.CreatedAt.Format(time.DateOnly),
		Reported:     comment.Reported,
		ReportReason: comment.ReportReason,
		Approved:     comment.Approved,
	}
}

func (h HandlerSet) ListComments(c *gin.Context) {
	if _, err := h.articles.FindByID(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article_not_found"})
		return
	}

	comments := h.comments.VisibleForArticle(c.Param("id"))
	resp := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		resp = append(resp, toCommentResponse(comment))
	}
	c.JSON(http.StatusOK, gin.H{"comments": resp})
}

type submitCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h HandlerSet) SubmitComment(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req submitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed"})
		return
	}

	comment, err := h.comments.Submit(account, c.Param("id"), req.Content)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": toCommentResponse(comment)})
}

type editCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h HandlerSet) EditComment(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req editCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed"})
		return
	}

	comment, err := h.comments.Edit(account, c.Param("id"), req.Content)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": toCommentResponse(comment)})
}

func (h HandlerSet) DeleteComment(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.comments.Delete(account, c.Param("id")); err != nil {
		writeMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type reportCommentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h HandlerSet) ReportComment(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req reportCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed"})
		return
	}

	comment, err := h.comments.Report(account, c.Param("id"), req.Reason)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": toCommentResponse(comment)})
}
