// Package model holds the record and staging types the integration
// factories are declared against.
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a persisted account record.
type User struct {
	ID    int64
	Name  string
	Email string
	UUID  uuid.UUID
}

// UserDraft is the staging shape of a user before persistence. Adapter
// assigned attributes (the primary key) are absent.
type UserDraft struct {
	Name  string
	Email string
	UUID  uuid.UUID
}

// Post is a persisted article record.
type Post struct {
	ID        int64
	Title     string
	Words     int
	Published bool
	Rating    float64
	Tags      []string
	Slug      string
	CreatedAt time.Time
}

// PostDraft is the staging shape of a post before persistence.
type PostDraft struct {
	Title     string
	Words     int
	Published bool
	Rating    float64
	Tags      []string
	Slug      string
	CreatedAt time.Time
}
