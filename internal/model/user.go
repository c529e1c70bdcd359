package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
	// EmailInUse reports whether email belongs to a user other than
	// excludeID. Pass 0 to match against every user.
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
}

// User represents a stored user account.
//
// Password is stored and compared verbatim; the service keeps the
// original deployment's plaintext behavior.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Identity is the login response shape: the user without the password.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Identity returns the user's identity fields, omitting the password.
func (u User) Identity() Identity {
	return Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
