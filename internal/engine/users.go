package engine

import (
	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// CreateUser inserts a new user with a fresh ID. Fails with
// CodeDuplicateEmail if the email is already taken by any user; on failure
// the collection is unchanged.
func (e *Engine) CreateUser(in entity.CreateUserInput) (entity.User, error) {
	var created entity.User
	err := e.store.Update(func(tx *store.Tx) error {
		if tx.EmailTaken(in.Email, "") {
			return duplicateEmail(in.Email)
		}
		created = entity.User{
			ID:    e.ids.NewID(),
			Name:  in.Name,
			Email: in.Email,
			Age:   in.Age,
		}
		tx.InsertUser(created)
		return nil
	})
	if err != nil {
		return entity.User{}, err
	}
	return created, nil
}

// UpdateUser applies the present fields of in to the user with the given
// ID. Absent (nil) fields are left untouched. Fails with CodeNotFound for
// an unknown ID, and with CodeDuplicateEmail if the new email is taken by
// a different user; keeping one's own email is fine.
func (e *Engine) UpdateUser(id string, in entity.UpdateUserInput) (entity.User, error) {
	var updated entity.User
	err := e.store.Update(func(tx *store.Tx) error {
		user, ok := tx.UserByID(id)
		if !ok {
			return notFound("user", id)
		}
		if in.Email != nil && tx.EmailTaken(*in.Email, id) {
			return duplicateEmail(*in.Email)
		}

		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Age != nil {
			user.Age = in.Age
		}

		tx.ReplaceUser(user)
		updated = user
		return nil
	})
	if err != nil {
		return entity.User{}, err
	}
	return updated, nil
}

// DeleteUser removes the user with the given ID and returns it. Fails with
// CodeNotFound for an unknown ID; a second delete with the same ID fails.
//
// Cascade: every post authored by the user is removed, and with each such
// post every comment on it; additionally every comment the user wrote on
// anyone's post is removed. Nothing else is touched. The whole cascade is
// one exclusive transaction, so readers see it fully applied or not at all.
func (e *Engine) DeleteUser(id string) (entity.User, error) {
	var removed entity.User
	err := e.store.Update(func(tx *store.Tx) error {
		user, ok := tx.RemoveUser(id)
		if !ok {
			return notFound("user", id)
		}

		for _, post := range tx.PostsByAuthor(id) {
			tx.RemovePost(post.ID)
			tx.RemoveCommentsByPost(post.ID)
		}
		tx.RemoveCommentsByAuthor(id)

		removed = user
		return nil
	})
	if err != nil {
		return entity.User{}, err
	}
	return removed, nil
}
