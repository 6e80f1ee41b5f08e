package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/service"
)

type queueEntryResponse struct {
	Comment      commentResponse `json:"comment"`
	ArticleTitle string          `json:"articleTitle"`
}

func toQueueEntryResponse(entry service.QueueEntry) queueEntryResponse {
	return queueEntryResponse{
		Comment:      toCommentResponse(entry.Comment),
		ArticleTitle: entry.ArticleTitle,
	}
}

func (h HandlerSet) ListReports(c *gin.Context) {
	entries := h.moderation.Queue()
	resp := make([]queueEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, toQueueEntryResponse(entry))
	}
	c.JSON(http.StatusOK, gin.H{"reports": resp})
}

func (h HandlerSet) ApproveReport(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	comment, err := h.moderation.Approve(account, c.Param("id"))
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": toCommentResponse(comment)})
}

func (h HandlerSet) RejectReport(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	comment, err := h.moderation.Reject(account, c.Param("id"))
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": toCommentResponse(comment)})
}
