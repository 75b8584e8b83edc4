package models

import "gorm.io/gorm"

// FriendshipStatus defines the state of a relationship between two users.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet answered.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the friend request was accepted, and the users are now friends.
	StatusAccepted FriendshipStatus = "accepted"

	// StatusRejected is a dead end: the pair must delete the edge before
	// a new request can be created between them.
	StatusRejected FriendshipStatus = "rejected"
)

// FriendshipEdge is one side of a friendship. Every relationship is
// stored as two mirrored rows, one per participant, and both rows must
// carry the same status after any transition.
type FriendshipEdge struct {
	gorm.Model
	OwnerEmail     string           `gorm:"size:255;not null;uniqueIndex:idx_owner_friend"`
	FriendEmail    string           `gorm:"size:255;not null;uniqueIndex:idx_owner_friend"`
	Status         FriendshipStatus `gorm:"type:varchar(20);not null"`
	InitiatorEmail string           `gorm:"size:255;not null"`
}
