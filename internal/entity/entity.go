package entity

// User is a registered author. Email is unique across all users; the
// mutation engine enforces this at create and update time.
type User struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Age   *int   `json:"age,omitempty" yaml:"age,omitempty"`
}

// Post is an article written by exactly one user. Author holds the ID of
// that user, never an embedded record - relations are foreign keys only,
// which keeps the naturally cyclic User/Post/Comment graph acyclic in
// memory.
type Post struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Published bool   `json:"published" yaml:"published"`
	Author    string `json:"author" yaml:"author"`
}

// Comment belongs to exactly one post and one author, both by ID.
type Comment struct {
	ID     string `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Post   string `json:"post" yaml:"post"`
	Author string `json:"author" yaml:"author"`
}
