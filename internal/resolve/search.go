package resolve

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// Users returns all users whose name contains query, case-insensitively.
// An empty query returns the whole collection unfiltered, in store order.
func (r *Resolver) Users(query string) []entity.User {
	var all []entity.User
	_ = r.store.View(func(tx *store.Tx) error {
		all = tx.Users()
		return nil
	})
	if query == "" {
		return all
	}

	folded := cases.Fold().String(query)
	var out []entity.User
	for _, u := range all {
		if foldContains(u.Name, folded) {
			out = append(out, u)
		}
	}
	return out
}

// Posts returns all posts whose title or body contains query,
// case-insensitively. An empty query returns the whole collection
// unfiltered, in store order.
func (r *Resolver) Posts(query string) []entity.Post {
	var all []entity.Post
	_ = r.store.View(func(tx *store.Tx) error {
		all = tx.Posts()
		return nil
	})
	if query == "" {
		return all
	}

	folded := cases.Fold().String(query)
	var out []entity.Post
	for _, p := range all {
		if foldContains(p.Title, folded) || foldContains(p.Body, folded) {
			out = append(out, p)
		}
	}
	return out
}

// foldContains reports whether s contains the already case-folded
// substring. Unicode case folding handles matches that simple ASCII
// lowering misses (e.g. "Straße" vs "STRASSE").
//
// A cases.Caser may be stateful, so a fresh one is taken per call instead
// of sharing a package-level instance across goroutines.
func foldContains(s, foldedSubstr string) bool {
	return strings.Contains(cases.Fold().String(s), foldedSubstr)
}
