// Package loco is the runtime surface of loco-factory, a code generator for
// test-data factories.
//
// A factory is declared once as a Go value: the target record type, the
// mutable staging type assembled before persistence, and an ordered list of
// fields, each with a deferred default expression. The compiler packages
// derive three callable artifacts per factory:
//
//	user, err := gen.CreateUser(ctx, db)                 // defaults only
//	b := gen.NewUserBuilder().Name("Jane Doe")            // fluent overrides
//	draft := b.Build()                                    // staging, no I/O
//	user, err = gen.NewUserBuilder().Create(ctx, db)      // build + persist
//
// Defaults are thunks, never precomputed constants: every Build or Create
// evaluates them fresh, so non-deterministic defaults such as uuid.New never
// collide across invocations. Builders are single-use; any call after a
// terminal Build or Create panics with a UsageError.
//
// Persistence is consumed, not implemented: generated Create hands the staging
// instance to a Saver, whose single Save operation performs the I/O and
// returns the persisted record or an error, which propagates unchanged.
package loco
