package service

import (
	"github.com/rs/zerolog"

	"miniblog/api/internal/models"
	"miniblog/api/internal/store"
)

// QueueEntry pairs a pending report with its parent article's title for the
// review surface. The title is resolved on every read; an article that no
// longer resolves leaves it empty rather than failing the whole queue.
type QueueEntry struct {
	Comment      models.Comment
	ArticleTitle string
}

// ModerationService is a read-only projection over the comment store plus
// the owner's decision pass-through. It holds no state of its own.
type ModerationService struct {
	comments *store.CommentStore
	articles store.ArticleDirectory
	log      zerolog.Logger
}

func NewModerationService(comments *store.CommentStore, articles store.ArticleDirectory, log zerolog.Logger) *ModerationService {
	return &ModerationService{
		comments: comments,
		articles: articles,
		log:      log,
	}
}

func (s *ModerationService) Queue() []QueueEntry {
	pending := s.comments.PendingReports()
	entries := make([]QueueEntry, 0, len(pending))
	for _, comment := range pending {
		entry := QueueEntry{Comment: comment}
		if article, err := s.articles.FindByID(comment.ArticleID); err == nil {
			entry.ArticleTitle = article.Title
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *ModerationService) Approve(actor models.Account, commentID string) (models.Comment, error) {
	comment, err := s.comments.Approve(actor, commentID)
	if err == nil {
		s.log.Info().Str("comment_id", commentID).Str("moderator", actor.ID).Msg("report upheld")
	}
	return comment, err
}

func (s *ModerationService) Reject(actor models.Account, commentID string) (models.Comment, error) {
	comment, err := s.comments.Reject(actor, commentID)
	if err == nil {
		s.log.Info().Str("comment_id", commentID).Str("moderator", actor.ID).Msg("report dismissed")
	}
	return comment, err
}
