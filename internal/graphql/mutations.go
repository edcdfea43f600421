package graphql

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"

	"github.com/SyzBeats/GraphQL-Blog/internal/engine"
	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
)

// validate checks decoded inputs before they reach the engine.
var validate = validator.New()

func newMutationType(eng *engine.Engine, userType, postType, commentType *graphql.Object) *graphql.Object {
	createUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"age":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
	updateUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"age":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
	createPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"body":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"published": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
			"author":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})
	updatePostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"body":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	createCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"text":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"post":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"author": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})
	updateCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"text": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := argMap(p, "data")
					in := entity.CreateUserInput{
						Name:  strArg(data, "name"),
						Email: strArg(data, "email"),
						Age:   intPtrArg(data, "age"),
					}
					if err := validate.Struct(in); err != nil {
						return nil, fmt.Errorf("invalid createUser input: %w", err)
					}
					return eng.CreateUser(in)
				},
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := argMap(p, "data")
					in := entity.UpdateUserInput{
						Name:  strPtrArg(data, "name"),
						Email: strPtrArg(data, "email"),
						Age:   intPtrArg(data, "age"),
					}
					if err := validate.Struct(in); err != nil {
						return nil, fmt.Errorf("invalid updateUser input: %w", err)
					}
					return eng.UpdateUser(idArg(p), in)
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return eng.DeleteUser(idArg(p))
				},
			},
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := argMap(p, "data")
					in := entity.CreatePostInput{
						Title:     strArg(data, "title"),
						Body:      strArg(data, "body"),
						Published: boolArg(data, "published"),
						Author:    strArg(data, "author"),
					}
					if err := validate.Struct(in); err != nil {
						return nil, fmt.Errorf("invalid createPost input: %w", err)
					}
					return eng.CreatePost(in)
				},
			},
			"updatePost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updatePostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := argMap(p, "data")
					in := entity.UpdatePostInput{
						Title: strPtrArg(data, "title"),
						Body:  strPtrArg(data, "body"),
					}
					if err := validate.Struct(in); err != nil {
						return nil, fmt.Errorf("invalid updatePost input: %w", err)
					}
					return eng.UpdatePost(idArg(p), in)
				},
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return eng.DeletePost(idArg(p))
				},
			},
			"createComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCommentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := argMap(p, "data")
					in := entity.CreateCommentInput{
						Text:   strArg(data, "text"),
						Post:   strArg(data, "post"),
						Author: strArg(data, "author"),
					}
					if err := validate.Struct(in); err != nil {
						return nil, fmt.Errorf("invalid createComment input: %w", err)
					}
					return eng.CreateComment(in)
				},
			},
			"updateComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCommentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := argMap(p, "data")
					in := entity.UpdateCommentInput{
						Text: strPtrArg(data, "text"),
					}
					if err := validate.Struct(in); err != nil {
						return nil, fmt.Errorf("invalid updateComment input: %w", err)
					}
					return eng.UpdateComment(idArg(p), in)
				},
			},
			"deleteComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return eng.DeleteComment(idArg(p))
				},
			},
		},
	})
}

// argMap extracts an input-object argument. graphql-go hands these over as
// generic maps; missing arguments come back as an empty map so the helpers
// below read zero values.
func argMap(p graphql.ResolveParams, key string) map[string]interface{} {
	if m, ok := p.Args[key].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func idArg(p graphql.ResolveParams) string {
	id, _ := p.Args["id"].(string)
	return id
}

func strArg(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolArg(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// strPtrArg distinguishes an absent argument (nil) from a present one, so
// the engine can tell "leave untouched" apart from "set to empty".
func strPtrArg(m map[string]interface{}, key string) *string {
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func intPtrArg(m map[string]interface{}, key string) *int {
	if n, ok := m[key].(int); ok {
		return &n
	}
	return nil
}
