package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"miniblog/api/internal/config"
	"miniblog/api/internal/middleware"
	"miniblog/api/internal/models"
	"miniblog/api/internal/service"
	"miniblog/api/internal/session"
	"miniblog/api/internal/store"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	authService *service.AuthService
	moderation  *service.ModerationService
	contact     *service.ContactService
	sessions    *session.Manager
	identity    *store.IdentityStore
	articles    *store.ArticleStore
	comments    *store.CommentStore
	cache       *redis.Client
}

func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	identity *store.IdentityStore,
	articles *store.ArticleStore,
	comments *store.CommentStore,
	sessions *session.Manager,
	cache *redis.Client,
) HandlerSet {
	auth := service.NewAuthService(identity, sessions, cfg, log)
	moderation := service.NewModerationService(comments, articles, log)
	contact := service.NewContactService(store.NewContactStore(), cfg, log)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		authService: auth,
		moderation:  moderation,
		contact:     contact,
		sessions:    sessions,
		identity:    identity,
		articles:    articles,
		comments:    comments,
		cache:       cache,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", h.Login)
		auth.GET("/session", h.Session)

		protected := v1.Group("/auth")
		protected.Use(middleware.Auth(h.cfg, h.identity))
		protected.POST("/logout", h.Logout)
		protected.GET("/me", h.Me)

		v1.GET("/articles", h.ListArticles)
		v1.GET("/articles/:id", h.GetArticle)
		v1.GET("/articles/:id/comments", h.ListComments)

		member := v1.Group("")
		member.Use(middleware.Auth(h.cfg, h.identity))
		member.POST("/articles/:id/comments", h.SubmitComment)
		member.PUT("/comments/:id", h.EditComment)
		member.DELETE("/comments/:id", h.DeleteComment)
		member.POST("/comments/:id/report", h.ReportComment)
		member.PUT("/profile", h.UpdateProfile)

		moderation := v1.Group("/moderation")
		moderation.Use(
			middleware.Auth(h.cfg, h.identity),
			middleware.RequireRoles(models.RoleOwner),
		)
		moderation.GET("/reports", h.ListReports)
		moderation.POST("/reports/:id/approve", h.ApproveReport)
		moderation.POST("/reports/:id/reject", h.RejectReport)

		v1.POST("/contact", h.SubmitContact)

		ownerContact := v1.Group("/contact")
		ownerContact.Use(
			middleware.Auth(h.cfg, h.identity),
			middleware.RequireRoles(models.RoleOwner),
		)
		ownerContact.GET("", h.ListContact)
	}
}

func currentAccount(c *gin.Context) (models.Account, bool) {
	accountVal, exists := c.Get("current_account")
	if !exists {
		return models.Account{}, false
	}
	account, ok := accountVal.(models.Account)
	return account, ok
}

// writeMutationError maps store failures for state-changing calls. A target
// that no longer resolves is a silent no-op: the caller may hold stale data
// and the requested change simply did not happen.
func writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.Status(http.StatusNoContent)
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed"})
	case errors.Is(err, store.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, store.ErrAlreadyReported):
		c.JSON(http.StatusConflict, gin.H{"error": "already_reported"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
