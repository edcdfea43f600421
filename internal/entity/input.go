package entity

// Mutation inputs are statically shaped: every operation declares exactly
// the fields it accepts. Update inputs use pointers for optional fields -
// nil means "leave the current value untouched", mirroring how the GraphQL
// layer distinguishes absent arguments from zero values.
//
// The validate tags are consumed by the transport layer before an input
// reaches the engine; the engine itself only checks relational rules.

// CreateUserInput carries the fields for a new user.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
}

// UpdateUserInput carries partial updates for an existing user.
type UpdateUserInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Age   *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
}

// CreatePostInput carries the fields for a new post. Author must reference
// an existing user at creation time.
type CreatePostInput struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Published bool   `json:"published"`
	Author    string `json:"author" validate:"required"`
}

// UpdatePostInput carries partial updates for an existing post.
// Published and Author are deliberately absent: once created, a post's
// publication state and authorship are immutable through this operation.
type UpdatePostInput struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Body  *string `json:"body,omitempty" validate:"omitempty,min=1"`
}

// CreateCommentInput carries the fields for a new comment. Post and Author
// must reference existing records at creation time.
type CreateCommentInput struct {
	Text   string `json:"text" validate:"required"`
	Post   string `json:"post" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// UpdateCommentInput carries partial updates for an existing comment.
type UpdateCommentInput struct {
	Text *string `json:"text,omitempty" validate:"omitempty,min=1"`
}
