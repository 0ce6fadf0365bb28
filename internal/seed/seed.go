// Package seed is the compiled-in data set the site starts from. It stands in
// for a database: every accessor hands out a deep copy, so callers can mutate
// what they receive without touching the seed.
package seed

import (
	"worldsporta/internal/domain" // Importing domain models

	"github.com/jinzhu/copier" // Deep copies of the seed collections
	"github.com/sirupsen/logrus"
)

// News returns the seeded articles, newest comments first
func News() []domain.NewsPost {
	var out []domain.NewsPost
	clone(&out, &news)
	return out
}

// Scores returns the seeded match scores
func Scores() []domain.MatchScore {
	var out []domain.MatchScore
	clone(&out, &scores)
	return out
}

// Products returns the seeded catalog
func Products() []domain.Product {
	var out []domain.Product
	clone(&out, &products)
	return out
}

// Users returns the seeded accounts
func Users() []domain.User {
	var out []domain.User
	clone(&out, &users)
	return out
}

// ProductByID looks a product up in the catalog
func ProductByID(id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// UserByUsername looks an account up by exact, case-sensitive username
func UserByUsername(username string) (domain.User, bool) {
	for _, u := range users {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

// clone deep-copies src into dst. The seed is plain data, so a failure here is a programming error.
func clone(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		logrus.Panicf("seed copy failed: %v", err)
	}
}
