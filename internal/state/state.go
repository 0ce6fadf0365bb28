// Package state holds the site's live data: the signed-in user, the news
// collection with its comments, the cart and the user list. One State is
// created from the seed at startup and handed to every handler.
package state

import (
	"context" // Detached context for summary requests
	"slices"  // Slice copies for snapshots
	"strings" // Blank input detection
	"sync"    // Handlers run on many goroutines

	"worldsporta/internal/domain" // Importing domain models
	"worldsporta/internal/seed"   // Initial data
	"worldsporta/internal/utils"  // Id generator and clock

	"github.com/jinzhu/copier"   // Deep copies of nested collections
	"github.com/pkg/errors"      // Error wrapping
	"github.com/sirupsen/logrus" // Structured logging
)

// GuestName is the author recorded for comments posted while nobody is signed in
const GuestName = "Guest_User"

// Summarizer produces article summaries. It must not fail; see assist.Gateway.
type Summarizer interface {
	Summarize(ctx context.Context, content string) string
}

// State is the application state container
type State struct {
	mu          sync.Mutex
	currentUser *domain.User        // nil when signed out
	news        []domain.NewsPost   // Working copy, comments mutate
	scores      []domain.MatchScore // Read-only after seeding
	products    []domain.Product    // Read-only after seeding
	cart        []domain.CartItem   // At most one item per product id
	users       []domain.User       // Shown in the admin table
	article     articleView         // Article currently opened, with its summary

	ids        utils.IDGenerator
	clock      utils.Clock
	summarizer Summarizer
	inflight   sync.WaitGroup // Outstanding summary requests
}

// Option customises a State at construction
type Option func(*State)

// WithIDGenerator replaces the UUID generator used for comment ids
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(s *State) { s.ids = g }
}

// WithClock replaces the wall clock used for comment dates
func WithClock(c utils.Clock) Option {
	return func(s *State) { s.clock = c }
}

// WithSummarizer sets the backend for article summaries
func WithSummarizer(sum Summarizer) Option {
	return func(s *State) { s.summarizer = sum }
}

// New seeds a fresh state container
func New(opts ...Option) *State {
	s := &State{
		news:     seed.News(),
		scores:   seed.Scores(),
		products: seed.Products(),
		users:    seed.Users(),
		cart:     []domain.CartItem{},
		ids:      utils.UUIDGenerator{},
		clock:    utils.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login signs in the seeded user whose username matches exactly. The password is not checked.
func (s *State) Login(username string) (domain.User, error) {
	u, ok := seed.UserByUsername(username)
	if !ok {
		logrus.WithField("username", username).Warn("Login rejected")
		return domain.User{}, errors.Wrapf(domain.ErrInvalidCredentials, "user %q", username)
	}
	s.mu.Lock()
	s.currentUser = &u
	s.mu.Unlock()
	logrus.WithFields(logrus.Fields{
		"user_id": u.ID,   // User ID
		"role":    u.Role, // User role
	}).Info("User logged in")
	return u, nil
}

// Logout clears the signed-in user
func (s *State) Logout() {
	s.mu.Lock()
	prev := s.currentUser
	s.currentUser = nil
	s.mu.Unlock()
	if prev != nil {
		logrus.WithField("user_id", prev.ID).Info("User logged out")
	}
}

// CurrentUser returns the signed-in user, if any
func (s *State) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return domain.User{}, false
	}
	return *s.currentUser, true
}

// AddToCart adds one unit of the product
func (s *State) AddToCart(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++ // Repeat add bumps the existing line
			return
		}
	}
	s.cart = append(s.cart, domain.CartItem{Product: p, Quantity: 1})
}

// Cart returns a copy of the cart lines in insertion order
func (s *State) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cart)
}

// CartCount returns the number of units across all cart lines
func (s *State) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.cart {
		n += item.Quantity
	}
	return n
}

// CartTotal returns the sum of the line subtotals
func (s *State) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.cart {
		total += item.Subtotal()
	}
	return total
}

// AddComment prepends a comment to a post. Blank text yields ErrEmptyInput and changes nothing.
func (s *State) AddComment(postID, text string) (domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, domain.ErrEmptyInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.postIndex(postID)
	if idx < 0 {
		return domain.Comment{}, errors.Wrapf(domain.ErrNotFound, "post %q", postID)
	}
	post := &s.news[idx]

	id := s.ids.NewID()
	for post.HasComment(id) {
		id = s.ids.NewID() // Never reuse an id already on the thread
	}
	author := GuestName
	if s.currentUser != nil {
		author = s.currentUser.Username
	}
	c := domain.Comment{ID: id, User: author, Text: text, Date: utils.Today(s.clock)}
	post.Comments = append([]domain.Comment{c}, post.Comments...) // Newest first

	logrus.WithFields(logrus.Fields{
		"post_id":    postID, // Article
		"comment_id": id,     // New comment
		"user":       author, // Author label
	}).Info("Comment added")
	return c, nil
}

// News returns a deep copy of the news collection
func (s *State) News() []domain.NewsPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.NewsPost
	deepCopy(&out, &s.news)
	return out
}

// Post returns a deep copy of one article
func (s *State) Post(id string) (domain.NewsPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.postIndex(id)
	if idx < 0 {
		return domain.NewsPost{}, errors.Wrapf(domain.ErrNotFound, "post %q", id)
	}
	var out domain.NewsPost
	deepCopy(&out, &s.news[idx])
	return out, nil
}

// Scores returns the match scores
func (s *State) Scores() []domain.MatchScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.scores)
}

// Score returns one match score
func (s *State) Score(id string) (domain.MatchScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.scores {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.MatchScore{}, errors.Wrapf(domain.ErrNotFound, "score %q", id)
}

// Products returns the catalog
func (s *State) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

// Product returns one catalog entry. The catalog is never edited at runtime, so the seed answers directly.
func (s *State) Product(id string) (domain.Product, error) {
	if p, ok := seed.ProductByID(id); ok {
		return p, nil
	}
	return domain.Product{}, errors.Wrapf(domain.ErrNotFound, "product %q", id)
}

// Users returns the account list
func (s *State) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

// postIndex finds a post by id. Caller holds mu.
func (s *State) postIndex(id string) int {
	return slices.IndexFunc(s.news, func(p domain.NewsPost) bool { return p.ID == id })
}

func deepCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		logrus.Panicf("state copy failed: %v", err)
	}
}
