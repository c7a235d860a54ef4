package sample

import "time"

// User is a sample aggregate used by parser tests.
type User struct {
	ID        string
	Name      string
	Age       int
	CreatedAt time.Time
	Tags      []string
	Friends   []*User
	Scores    map[string]int
	internal  bool
}

// Users is a slice alias and carries no fields of its own.
type Users []*User

// Box is generic and therefore skipped by collection.
type Box[T any] struct {
	V T
}
