// Package factories declares the factory definitions the integration suite
// generates artifacts from. The generated package lives in ../gen and is
// checked in.
package factories

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	loco "github.com/ofabianomartins/loco-factory"
	"github.com/ofabianomartins/loco-factory/compiler/integration/model"
	"github.com/ofabianomartins/loco-factory/factory/field"
)

//go:generate go run generate.go

var emailSeq atomic.Int64

// FreshEmail returns a distinct email address on every call.
func FreshEmail() string {
	return fmt.Sprintf("user%d@example.com", emailSeq.Add(1))
}

// SlugSource produces post slugs. The integration tests swap it out to
// exercise failing defaults, which is why the field default calls through
// the variable instead of capturing it.
var SlugSource = func() (string, error) {
	return fmt.Sprintf("post-%d", time.Now().UnixNano()), nil
}

// User declares the create_user factory.
type User struct {
	loco.Factory
}

func (User) Name() string { return "create_user" }

func (User) Target() any  { return model.User{} }
func (User) Staging() any { return model.UserDraft{} }

func (User) Fields() []loco.Field {
	return []loco.Field{
		field.String("name").Default("Test User"),
		field.String("email").DefaultFunc(FreshEmail),
		field.UUID("uuid", uuid.UUID{}).DefaultFunc(uuid.New),
	}
}

// Post declares the create_post factory. It covers every default shape:
// literals of each basic kind, thunks over composite types and a fallible
// thunk.
type Post struct {
	loco.Factory
}

func (Post) Name() string { return "create_post" }

func (Post) Target() any  { return model.Post{} }
func (Post) Staging() any { return model.PostDraft{} }

func (Post) Fields() []loco.Field {
	return []loco.Field{
		field.String("title").Default("Hello, World"),
		field.Int("words").Default(120),
		field.Bool("published").Default(true),
		field.Float64("rating").Default(4.5),
		field.Other("tags", []string(nil)).DefaultFunc(func() []string { return []string{"general"} }),
		field.String("slug").DefaultFunc(func() (string, error) { return SlugSource() }),
		field.Time("created_at").DefaultFunc(time.Now),
	}
}
