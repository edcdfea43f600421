// Package graphql exposes the core over the wire: a GraphQL schema served
// on POST /graphql and a websocket endpoint streaming subscription events.
//
// This layer owns argument validation. Inputs are decoded into the static
// entity input structs and checked before the engine sees them, so the
// core always receives already-validated arguments.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/SyzBeats/GraphQL-Blog/internal/engine"
	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
	"github.com/SyzBeats/GraphQL-Blog/internal/resolve"
)

// NewSchema builds the executable schema over a resolver (reads) and an
// engine (writes).
func NewSchema(res *resolve.Resolver, eng *engine.Engine) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"age":   &graphql.Field{Type: graphql.Int},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"body":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"published": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"text": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	// Relation fields are added after construction to break the
	// User/Post/Comment type cycle.
	postType.AddFieldConfig("author", &graphql.Field{
		Type: graphql.NewNonNull(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			post, ok := p.Source.(entity.Post)
			if !ok {
				return nil, nil
			}
			return res.PostAuthor(post)
		},
	})
	postType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			post, ok := p.Source.(entity.Post)
			if !ok {
				return nil, nil
			}
			return res.PostComments(post), nil
		},
	})
	userType.AddFieldConfig("posts", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, ok := p.Source.(entity.User)
			if !ok {
				return nil, nil
			}
			return res.UserPosts(user), nil
		},
	})
	userType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, ok := p.Source.(entity.User)
			if !ok {
				return nil, nil
			}
			return res.UserComments(user), nil
		},
	})
	commentType.AddFieldConfig("author", &graphql.Field{
		Type: graphql.NewNonNull(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			comment, ok := p.Source.(entity.Comment)
			if !ok {
				return nil, nil
			}
			return res.CommentAuthor(comment)
		},
	})
	commentType.AddFieldConfig("post", &graphql.Field{
		Type: graphql.NewNonNull(postType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			comment, ok := p.Source.(entity.Comment)
			if !ok {
				return nil, nil
			}
			return res.CommentPost(comment)
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			// me and post mirror the original demo queries: the first
			// seeded user and post instead of hardcoded literals.
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					users := res.Users("")
					if len(users) == 0 {
						return nil, nil
					}
					return users[0], nil
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					posts := res.Posts("")
					if len(posts) == 0 {
						return nil, nil
					}
					return posts[0], nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					user, ok := res.User(id)
					if !ok {
						return nil, nil
					}
					return user, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					query, _ := p.Args["query"].(string)
					return res.Users(query), nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					query, _ := p.Args["query"].(string)
					return res.Posts(query), nil
				},
			},
			"comments": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return res.Comments(), nil
				},
			},
		},
	})

	mutationType := newMutationType(eng, userType, postType, commentType)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
