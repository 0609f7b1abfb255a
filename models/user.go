package models

import "time"

// User represents a registered account. It is the only persisted entity of
// the application.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user. It is a UUID assigned once
	// at creation time and never reused after deletion.
	ID string `json:"id"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded from
	// JSON serialization.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CreateUserInput carries the fields required to register a new user.
// All fields are mandatory.
//
// PasswordHash carries the raw secret as submitted by the client; the field
// name follows the persisted column it ends up in after hashing. The value
// is hashed by the user service before it ever reaches the store.
type CreateUserInput struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// UpdateUserInput carries an optional subset of mutable user fields.
// Nil fields are left untouched by the update. The password is not
// updatable through this input.
type UpdateUserInput struct {
	Username *string `json:"username,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// IsEmpty reports whether the input carries no fields to change.
func (in UpdateUserInput) IsEmpty() bool {
	return in.Username == nil && in.FullName == nil && in.Email == nil
}

// RegistrationPayload is the result of a successful registration or login:
// the persisted user together with a freshly signed token.
// It is constructed per call and never persisted.
type RegistrationPayload struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
