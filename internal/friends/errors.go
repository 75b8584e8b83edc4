package friends

import "errors"

var (
	// ErrNotFound indicates the requested edge or adjacency record does not exist.
	ErrNotFound = errors.New("friendship not found")

	// ErrAlreadyExists indicates a non-rejected edge is already present between the pair.
	ErrAlreadyExists = errors.New("friend request already exists")

	// ErrSelfRequest indicates a user tried to befriend themselves.
	ErrSelfRequest = errors.New("cannot send friend request to yourself")
)
