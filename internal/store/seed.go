package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
)

//go:embed seed.yaml
var defaultSeedYAML []byte

// Seed is a full snapshot of the three collections, used to populate a
// store with fixture data at startup and in tests.
type Seed struct {
	Users    []entity.User    `yaml:"users" json:"users"`
	Posts    []entity.Post    `yaml:"posts" json:"posts"`
	Comments []entity.Comment `yaml:"comments" json:"comments"`
}

// ParseSeed decodes a YAML seed document and checks it for internal
// consistency: non-empty unique IDs per collection, unique emails, and
// resolvable author/post references.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return seed, nil
}

// LoadSeedFile reads and parses a YAML seed file.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("load seed file: %w", err)
	}
	return ParseSeed(data)
}

// DefaultSeed returns the embedded fixture data set.
// Panics only if the embedded asset is corrupt, which cannot happen in a
// correctly built binary.
func DefaultSeed() Seed {
	seed, err := ParseSeed(defaultSeedYAML)
	if err != nil {
		panic(fmt.Sprintf("store: embedded seed invalid: %v", err))
	}
	return seed
}

// Load replaces the store's contents with the seed's collections,
// preserving the seed's declaration order as the enumeration order.
func (s *Store) Load(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]entity.User(nil), seed.Users...)
	s.posts = append([]entity.Post(nil), seed.Posts...)
	s.comments = append([]entity.Comment(nil), seed.Comments...)
}

// Snapshot returns a copy of the store's current contents in enumeration
// order. Used for inspection and golden tests.
func (s *Store) Snapshot() Seed {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Seed{
		Users:    append([]entity.User(nil), s.users...),
		Posts:    append([]entity.Post(nil), s.posts...),
		Comments: append([]entity.Comment(nil), s.comments...),
	}
}

func (seed Seed) validate() error {
	userIDs := make(map[string]struct{}, len(seed.Users))
	emails := make(map[string]struct{}, len(seed.Users))
	for _, u := range seed.Users {
		if u.ID == "" {
			return fmt.Errorf("user %q has no id", u.Name)
		}
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("duplicate user id %q", u.ID)
		}
		if _, dup := emails[u.Email]; dup {
			return fmt.Errorf("duplicate email %q", u.Email)
		}
		userIDs[u.ID] = struct{}{}
		emails[u.Email] = struct{}{}
	}

	postIDs := make(map[string]struct{}, len(seed.Posts))
	for _, p := range seed.Posts {
		if p.ID == "" {
			return fmt.Errorf("post %q has no id", p.Title)
		}
		if _, dup := postIDs[p.ID]; dup {
			return fmt.Errorf("duplicate post id %q", p.ID)
		}
		if _, ok := userIDs[p.Author]; !ok {
			return fmt.Errorf("post %q references unknown author %q", p.ID, p.Author)
		}
		postIDs[p.ID] = struct{}{}
	}

	commentIDs := make(map[string]struct{}, len(seed.Comments))
	for _, c := range seed.Comments {
		if c.ID == "" {
			return fmt.Errorf("comment %q has no id", c.Text)
		}
		if _, dup := commentIDs[c.ID]; dup {
			return fmt.Errorf("duplicate comment id %q", c.ID)
		}
		if _, ok := postIDs[c.Post]; !ok {
			return fmt.Errorf("comment %q references unknown post %q", c.ID, c.Post)
		}
		if _, ok := userIDs[c.Author]; !ok {
			return fmt.Errorf("comment %q references unknown author %q", c.ID, c.Author)
		}
		commentIDs[c.ID] = struct{}{}
	}

	return nil
}
