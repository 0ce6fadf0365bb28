package state

import (
	"context"

	"worldsporta/internal/domain"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// articleView is the article the visitor has open. A summary belongs to one
// opening of one article; gen changes whenever a different article is opened,
// so results arriving for an older view are dropped.
type articleView struct {
	postID  string
	gen     uint64
	pending bool
	text    string
}

// SummaryView is what the article page shows in its summary box
type SummaryView struct {
	Pending bool   // A request is in flight
	Text    string // Generated or fallback text, empty until one arrives
}

// Ready reports whether a summary text is available
func (v SummaryView) Ready() bool { return v.Text != "" }

// OpenArticle makes the article the active view. Opening a different article discards the previous summary.
func (s *State) OpenArticle(id string) (domain.NewsPost, error) {
	post, err := s.Post(id)
	if err != nil {
		return domain.NewsPost{}, err
	}
	s.mu.Lock()
	s.openLocked(id)
	s.mu.Unlock()
	return post, nil
}

// CloseArticle ends the active article view. A summary still in flight for it is discarded on arrival.
func (s *State) CloseArticle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.article.postID == "" {
		return
	}
	s.article = articleView{gen: s.article.gen + 1}
}

// openLocked switches the active view. Caller holds mu.
func (s *State) openLocked(id string) {
	if s.article.postID == id {
		return
	}
	s.article = articleView{postID: id, gen: s.article.gen + 1}
}

// Summary returns the summary state for the article if it is the active view
func (s *State) Summary(id string) SummaryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.article.postID != id {
		return SummaryView{}
	}
	return SummaryView{Pending: s.article.pending, Text: s.article.text}
}

// RequestSummary starts summarising the article in the background. It returns
// immediately; the view reports Pending until the text arrives. A request
// while one is pending, or after a summary exists, does nothing.
func (s *State) RequestSummary(ctx context.Context, id string) error {
	if s.summarizer == nil {
		return errors.New("no summarizer configured")
	}
	post, err := s.Post(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.openLocked(id)
	if s.article.pending || s.article.text != "" {
		s.mu.Unlock()
		return nil
	}
	s.article.pending = true
	gen := s.article.gen
	s.inflight.Add(1)
	s.mu.Unlock()

	// The request context ends with the HTTP request; the summary must outlive it.
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer s.inflight.Done()
		text := s.summarizer.Summarize(ctx, post.Content)
		s.applySummary(id, gen, text)
	}()
	return nil
}

// applySummary stores a finished summary if its view is still the active one
func (s *State) applySummary(id string, gen uint64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.article.postID != id || s.article.gen != gen {
		logrus.WithField("post_id", id).Debug("Discarding stale summary")
		return
	}
	s.article.pending = false
	s.article.text = text
}

// WaitSummaries blocks until every in-flight summary request has finished
func (s *State) WaitSummaries() {
	s.inflight.Wait()
}
