package store

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestDefaultSeed_Golden pins the embedded seed's exact content and
// enumeration order. Regenerate with:
//
//	go test ./internal/store -update
func TestDefaultSeed_Golden(t *testing.T) {
	st := New()
	st.Load(DefaultSeed())

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	require.NoError(t, enc.Encode(st.Snapshot()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default_seed", buf.Bytes())
}
