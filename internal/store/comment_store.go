package store

import (
	"strings"
	"sync"
	"time"

	"miniblog/api/internal/ids"
	"miniblog/api/internal/models"
)

// CommentStore owns the canonical comment collection and its moderation
// state machine: clean -> pending (report) -> removed (approve) or back to
// clean (reject). Every read recomputes from the canonical slice; nothing
// is cached or denormalized, so swapping this store for a shared remote one
// cannot leave a stale index behind.
type CommentStore struct {
	mu       sync.RWMutex
	articles ArticleDirectory
	comments []models.Comment
	now      func() time.Time
}

func NewCommentStore(articles ArticleDirectory, seedComments []models.Comment) *CommentStore {
	copied := make([]models.Comment, len(seedComments))
	copy(copied, seedComments)
	return &CommentStore{
		articles: articles,
		comments: copied,
		now:      time.Now,
	}
}

// Submit appends a new clean comment by the actor. The body must be
// non-empty and the article must currently resolve.
func (s *CommentStore) Submit(actor models.Account, articleID, body string) (models.Comment, error) {
	if actor.ID == "" {
		return models.Comment{}, ErrPermissionDenied
	}
	if strings.TrimSpace(body) == "" {
		return models.Comment{}, ErrValidation
	}
	if _, err := s.articles.FindByID(articleID); err != nil {
		return models.Comment{}, ErrNotFound
	}

	comment := models.Comment{
		ID:         ids.New(),
		ArticleID:  articleID,
		AuthorID:   actor.ID,
		AuthorName: actor.Username,
		Body:       body,
		CreatedAt:  s.now(),
	}

	s.mu.Lock()
	s.comments = append(s.comments, comment)
	s.mu.Unlock()

	return comment, nil
}

// Edit replaces the body of the actor's own comment. Editing stays allowed
// while a report is pending; a removed comment can no longer be edited.
func (s *CommentStore) Edit(actor models.Account, commentID, body string) (models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return models.Comment{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(commentID)
	if i < 0 {
		return models.Comment{}, ErrNotFound
	}
	if s.comments[i].AuthorID != actor.ID || actor.ID == "" {
		return models.Comment{}, ErrPermissionDenied
	}
	if s.comments[i].State() == models.ModerationRemoved {
		return models.Comment{}, ErrPermissionDenied
	}

	s.comments[i].Body = body
	return cloneComment(s.comments[i]), nil
}

// Delete permanently erases the actor's own comment. Deleting a pending
// comment takes its open report with it.
func (s *CommentStore) Delete(actor models.Account, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(commentID)
	if i < 0 {
		return ErrNotFound
	}
	if s.comments[i].AuthorID != actor.ID || actor.ID == "" {
		return ErrPermissionDenied
	}
	if s.comments[i].State() == models.ModerationRemoved {
		return ErrPermissionDenied
	}

	s.comments = append(s.comments[:i], s.comments[i+1:]...)
	return nil
}

// Report flags a comment for owner review. Authors cannot report their own
// comments, and a comment with an open or upheld report rejects a second
// report without touching the original reason.
func (s *CommentStore) Report(actor models.Account, commentID, reason string) (models.Comment, error) {
	if actor.ID == "" {
		return models.Comment{}, ErrPermissionDenied
	}
	if strings.TrimSpace(reason) == "" {
		return models.Comment{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(commentID)
	if i < 0 {
		return models.Comment{}, ErrNotFound
	}
	if s.comments[i].AuthorID == actor.ID {
		return models.Comment{}, ErrPermissionDenied
	}
	if s.comments[i].Reported || s.comments[i].State() == models.ModerationRemoved {
		return models.Comment{}, ErrAlreadyReported
	}

	s.comments[i].Reported = true
	s.comments[i].ReportReason = reason
	return cloneComment(s.comments[i]), nil
}

// Approve upholds a pending report: the comment is hidden from every
// visible view but the record is kept.
func (s *CommentStore) Approve(actor models.Account, commentID string) (models.Comment, error) {
	return s.decide(actor, commentID, true)
}

// Reject dismisses a pending report. The comment returns to a state
// indistinguishable from one that was never reported.
func (s *CommentStore) Reject(actor models.Account, commentID string) (models.Comment, error) {
	return s.decide(actor, commentID, false)
}

func (s *CommentStore) decide(actor models.Account, commentID string, uphold bool) (models.Comment, error) {
	if actor.Role() != models.RoleOwner {
		return models.Comment{}, ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(commentID)
	if i < 0 || s.comments[i].State() != models.ModerationPending {
		// Stale queue entry: the comment or its report is gone.
		return models.Comment{}, ErrNotFound
	}

	if uphold {
		upheld := true
		s.comments[i].Approved = &upheld
	} else {
		s.comments[i].Approved = nil
		s.comments[i].Reported = false
		s.comments[i].ReportReason = ""
	}
	return cloneComment(s.comments[i]), nil
}

// VisibleForArticle returns the article's comments in insertion order,
// excluding only those whose report was upheld. Pending comments stay
// visible to everyone while awaiting a decision.
func (s *CommentStore) VisibleForArticle(articleID string) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, comment := range s.comments {
		if comment.ArticleID == articleID && comment.Visible() {
			out = append(out, cloneComment(comment))
		}
	}
	return out
}

// PendingReports returns every reported, undecided comment across all
// articles in insertion order. This is the moderation queue; it is scanned
// out of the canonical collection on every call.
func (s *CommentStore) PendingReports() []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, comment := range s.comments {
		if comment.State() == models.ModerationPending {
			out = append(out, cloneComment(comment))
		}
	}
	return out
}

// Get returns the comment regardless of moderation state.
func (s *CommentStore) Get(commentID string) (models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(commentID)
	if i < 0 {
		return models.Comment{}, ErrNotFound
	}
	return cloneComment(s.comments[i]), nil
}

// indexOf requires s.mu held.
func (s *CommentStore) indexOf(commentID string) int {
	for i := range s.comments {
		if s.comments[i].ID == commentID {
			return i
		}
	}
	return -1
}

func cloneComment(c models.Comment) models.Comment {
	if c.Approved != nil {
		v := *c.Approved
		c.Approved = &v
	}
	return c
}
