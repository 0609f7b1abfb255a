package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/organizemymind/go-user-api/models"
)

const usersTable = "users"

// userColumns lists the persisted columns of the users table in scan order.
var userColumns = []string{"id", "username", "full_name", "email", "password_hash", "created_at"}

const returningUserColumns = "RETURNING id, username, full_name, email, password_hash, created_at"

// builder returns a statement builder bound to the placeholder format of the
// active engine.
func (r *userRepository) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(r.db.placeholder())
}

func (r *userRepository) insertUserQuery(user models.User) (string, []any, error) {
	return r.builder().
		Insert(usersTable).
		Columns("id", "username", "full_name", "email", "password_hash").
		Values(user.ID, user.Username, user.FullName, user.Email, user.PasswordHash).
		Suffix(returningUserColumns).
		ToSql()
}

func (r *userRepository) selectUserByIDQuery(id string) (string, []any, error) {
	return r.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (r *userRepository) selectUserByUsernameQuery(username string) (string, []any, error) {
	return r.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (r *userRepository) selectAllUsersQuery() (string, []any, error) {
	return r.builder().
		Select(userColumns...).
		From(usersTable).
		OrderBy("username").
		ToSql()
}

// updateUserQuery builds a partial UPDATE touching only the non-nil fields
// of input. An empty input degrades to a no-op write on the id column so
// that the statement still reports whether the row exists.
func (r *userRepository) updateUserQuery(id string, input models.UpdateUserInput) (string, []any, error) {
	query := r.builder().Update(usersTable)

	if input.Username != nil {
		query = query.Set("username", *input.Username)
	}
	if input.FullName != nil {
		query = query.Set("full_name", *input.FullName)
	}
	if input.Email != nil {
		query = query.Set("email", *input.Email)
	}
	if input.IsEmpty() {
		query = query.Set("id", id)
	}

	return query.Where(sq.Eq{"id": id}).ToSql()
}

func (r *userRepository) deleteUserQuery(id string) (string, []any, error) {
	return r.builder().
		Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
