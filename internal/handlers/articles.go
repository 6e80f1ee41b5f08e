package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"miniblog/api/internal/models"
)

type articleResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content,omitempty"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date"`
	Author   string   `json:"author"`
	ReadTime int      `json:"readTime"`
}

func toArticleResponse(article models.Article, includeContent bool) articleResponse {
	resp := articleResponse{
		ID:       article.ID,
		Title:    article.Title,
		Excerpt:  article.Excerpt,
		Tags:     article.Tags,
		Date:     article.Date.Format(time.DateOnly),
		Author:   article.Author,
		ReadTime: article.ReadTime,
	}
	if includeContent {
		resp.Content = article.Content
	}
	return resp
}

func (h HandlerSet) ListArticles(c *gin.Context) {
	articles := h.articles.List()
	resp := make([]articleResponse, 0, len(articles))
	for _, article := range articles {
		resp = append(resp, toArticleResponse(article, false))
	}
	c.JSON(http.StatusOK, gin.H{"articles": resp})
}

func (h HandlerSet) GetArticle(c *gin.Context) {
	article, err := h.articles.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article_not_found"})
		return
	}

	comments := h.comments.VisibleForArticle(article.ID)
	commentResp := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResp = append(commentResp, toCommentResponse(comment))
	}

	c.JSON(http.StatusOK, gin.H{
		"article":  toArticleResponse(article, true),
		"comments": commentResp,
	})
}
