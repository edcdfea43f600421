package testutil

import (
	"testing"

	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// SeededStore returns a store loaded with the embedded default seed:
// three users ("1".."3"), three posts ("1".."3", all published) and four
// comments ("1".."4").
func SeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	st.Load(store.DefaultSeed())
	return st
}
