package user

type Repository interface {
	// Command
	Store(u *User) error
	Delete(id UserID) (*User, error)

	// Query
	Find(id UserID) (*User, error)
	FindAll() ([]*User, error)

	Close() error
}
