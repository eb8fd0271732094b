package loco

import (
	"context"

	"github.com/ofabianomartins/loco-factory/factory/field"
)

// Interface is implemented by all factory definitions. A definition names the
// target record type produced on a successful create, the mutable staging type
// the builder assembles, and the ordered set of fields with their defaults.
//
// Definitions are plain structs embedding Factory:
//
//	type User struct {
//		loco.Factory
//	}
//
//	func (User) Target() any  { return model.User{} }
//	func (User) Staging() any { return model.UserDraft{} }
//
//	func (User) Fields() []loco.Field {
//		return []loco.Field{
//			field.String("name").Default("Test User"),
//			field.String("email").DefaultFunc(FreshEmail),
//			field.UUID("uuid", uuid.UUID{}).DefaultFunc(uuid.New),
//		}
//	}
type Interface interface {
	// Target returns the zero value of the persisted record type.
	Target() any
	// Staging returns the zero value of the mutable pre-persistence type.
	Staging() any
	// Fields returns the declared fields in order. Field names must be
	// unique and every field must carry a default.
	Fields() []Field
}

// Namer is an optional interface for definitions that want an explicit
// factory name instead of the one derived from the definition type.
// Both "user" and "create_user" style names are accepted.
type Namer interface {
	Name() string
}

// Factory is the default implementation for factory definitions.
// Embed it in a definition struct and override Target, Staging and Fields.
type Factory struct{}

// Target of the factory. Must be overridden by the definition.
func (Factory) Target() any { return nil }

// Staging of the factory. Must be overridden by the definition.
func (Factory) Staging() any { return nil }

// Fields of the factory.
func (Factory) Fields() []Field { return nil }

// Field is a declared factory field backed by a descriptor.
type Field interface {
	Descriptor() *field.Descriptor
}

// Saver is the persistence adapter contract consumed by generated code.
// It durably stores a staging instance and returns the persisted record,
// with any adapter-assigned attributes (generated keys, timestamps) filled in.
// Sharing, pooling and cancellation semantics belong to the adapter.
type Saver[S, T any] interface {
	Save(ctx context.Context, staging S) (T, error)
}

// SaverFunc adapts an ordinary function to the Saver interface.
type SaverFunc[S, T any] func(ctx context.Context, staging S) (T, error)

// Save calls f(ctx, staging).
func (f SaverFunc[S, T]) Save(ctx context.Context, staging S) (T, error) {
	return f(ctx, staging)
}
