// Package field provides fluent builders for declaring factory fields.
//
// Each declared field names a field of the factory's staging type, carries
// the same Go type, and holds a default expression:
//
//	// Literal defaults (basic types only)
//	field.String("name").Default("Test User")
//	field.Int("retries").Default(3)
//
//	// Thunk defaults, evaluated fresh on every Build/Create
//	field.UUID("uuid", uuid.UUID{}).DefaultFunc(uuid.New)
//	field.Time("created_at").DefaultFunc(time.Now)
//	field.String("email").DefaultFunc(FreshEmail)
//
//	// Fallible thunks propagate as tagged errors
//	field.String("slug").DefaultFunc(func() (string, error) { ... })
//
//	// Arbitrary staging field types
//	field.Other("tags", []string(nil)).DefaultFunc(func() []string {
//		return []string{"factory"}
//	})
//
// Defaults of non-basic types must be thunks: handing the same slice, map or
// struct value to every invocation would leak shared state between records.
//
// Errors made while building a descriptor are carried on the descriptor and
// reported at definition time by compiler/load, never at factory call time.
package field
