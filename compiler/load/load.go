// Package load builds the closed, validated model of factory definitions. All definition errors (duplicate fields, staging type
// mismatches, malformed defaults) are reported here, at declaration time,
// never deferred to a factory call.
package load

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"github.com/go-openapi/inflect"

	loco "github.com/ofabianomartins/loco-factory"
	"github.com/ofabianomartins/loco-factory/factory/field"
)

// DefaultMode describes how the generator materializes a field default.
type DefaultMode uint8

const (
	// DefaultLiteral is a basic value inlined at the evaluation site.
	DefaultLiteral DefaultMode = iota
	// DefaultFunc is an infallible thunk wired through the generated runtime.
	DefaultFunc
	// DefaultFallibleFunc is a thunk returning (T, error).
	DefaultFallibleFunc
)

// TypeRef identifies a named Go type by package path and identifier.
type TypeRef struct {
	Ident   string
	PkgPath string
}

// Factory is a loco.Interface definition loaded into its validated model.
// It is immutable after NewFactory returns.
type Factory struct {
	Name    string   // artifact base name, e.g. "User".
	Def     TypeRef  // definition type, re-read by the generated runtime.
	Target  TypeRef  // persisted record type.
	Staging TypeRef  // mutable pre-persistence type.
	Fields  []*Field // declared fields, in declaration order.
}

// Field is a declared factory field resolved against the staging type.
type Field struct {
	Name        string          // declared name, e.g. "created_at".
	StructField string          // matching staging struct field, e.g. "CreatedAt".
	Info        *field.TypeInfo // Go type information.
	Position    int             // index in the definition's Fields() slice.
	Mode        DefaultMode
	Literal     any // inlined value when Mode is DefaultLiteral.
}

// Fallible reports whether the field default can fail.
func (f *Field) Fallible() bool { return f.Mode == DefaultFallibleFunc }

// MemberName returns the builder struct member holding the field override.
// Initialism-only struct fields ("UUID", "ID") map to their lowercase form.
func (f *Field) MemberName() string {
	if s := f.StructField; s == strings.ToUpper(s) {
		return strings.ToLower(s)
	}
	return inflect.CamelizeDownFirst(inflect.Underscore(f.StructField))
}

// FuncName returns the name of the generated factory entrypoint.
func (f *Factory) FuncName() string { return "Create" + f.Name }

// BuilderName returns the name of the generated builder type.
func (f *Factory) BuilderName() string { return f.Name + "Builder" }

// ConstructorName returns the name of the generated builder constructor.
func (f *Factory) ConstructorName() string { return "New" + f.BuilderName() }

// FileName returns the generated file name for the factory.
func (f *Factory) FileName() string { return inflect.Underscore(f.Name) + ".go" }

// Fallible reports whether any field default can fail, which changes the
// Build signature of the generated builder.
func (f *Factory) Fallible() bool {
	for _, fd := range f.Fields {
		if fd.Fallible() {
			return true
		}
	}
	return false
}

// DefaultVar returns the generated package variable a thunk default of the
// given field is wired into.
func (f *Factory) DefaultVar(fd *Field) string {
	return inflect.CamelizeDownFirst(inflect.Underscore(f.Name)) + "Default" + fd.StructField
}

// Factories loads and validates a set of factory definitions, preserving
// order. Artifact names must be unique across the set.
func Factories(defs ...loco.Interface) ([]*Factory, error) {
	factories := make([]*Factory, 0, len(defs))
	names := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		f, err := NewFactory(def)
		if err != nil {
			return nil, err
		}
		if _, ok := names[f.Name]; ok {
			return nil, NewDefinitionError(f.Name, "", "duplicate factory name", nil)
		}
		names[f.Name] = struct{}{}
		factories = append(factories, f)
	}
	return factories, nil
}

// NewFactory loads a single definition into its validated model,
// performing every definition-time check.
func NewFactory(def loco.Interface) (*Factory, error) {
	if def == nil {
		return nil, NewDefinitionError("", "", "nil factory definition", nil)
	}
	dt := indirect(reflect.TypeOf(def))
	name, err := factoryName(def, dt)
	if err != nil {
		return nil, err
	}
	f := &Factory{
		Name: name,
		Def:  TypeRef{Ident: dt.Name(), PkgPath: dt.PkgPath()},
	}
	if f.Def.Ident == "" || f.Def.PkgPath == "" {
		return nil, NewDefinitionError(name, "", "factory definition must be a named type", nil)
	}
	target, err := structRef(name, "target", def.Target())
	if err != nil {
		return nil, err
	}
	f.Target = target.ref
	staging, err := structRef(name, "staging", def.Staging())
	if err != nil {
		return nil, err
	}
	f.Staging = staging.ref
	if err := f.loadFields(def, staging.rtype); err != nil {
		return nil, err
	}
	// The generated runtime wires thunk defaults by constructing the
	// definition from the generated package.
	if !token.IsExported(f.Def.Ident) {
		for _, fd := range f.Fields {
			if fd.Mode != DefaultLiteral {
				return nil, NewDefinitionError(name, fd.Name,
					fmt.Sprintf("definition type %s must be exported to carry thunk defaults", f.Def.Ident), nil)
			}
		}
	}
	return f, nil
}

func (f *Factory) loadFields(def loco.Interface, staging reflect.Type) error {
	fields, err := safeFields(def)
	if err != nil {
		return NewDefinitionError(f.Name, "", "", err)
	}
	seen := make(map[string]struct{}, len(fields))
	for i, fl := range fields {
		fd := fl.Descriptor()
		if fd.Err != nil {
			return NewDefinitionError(f.Name, fd.Name, "", fd.Err)
		}
		if _, ok := seen[fd.Name]; ok {
			return NewDefinitionError(f.Name, fd.Name, "duplicate field name", nil)
		}
		seen[fd.Name] = struct{}{}
		lf := &Field{
			Name:     fd.Name,
			Info:     fd.Info,
			Position: i,
		}
		sf, ok := stagingField(staging, fd.Name)
		if !ok {
			return NewDefinitionError(f.Name, fd.Name,
				fmt.Sprintf("staging type %s has no field matching %q", staging, fd.Name), nil)
		}
		lf.StructField = sf.Name
		if sf.Type != fd.Info.RType {
			return NewDefinitionError(f.Name, fd.Name,
				fmt.Sprintf("declared type %s does not match staging field %s.%s of type %s",
					fd.Info.RType, staging, sf.Name, sf.Type), nil)
		}
		if lf.MemberName() == "consumed" {
			return NewDefinitionError(f.Name, fd.Name, "field name is reserved by the generated builder", nil)
		}
		if err := lf.classifyDefault(f.Name, fd); err != nil {
			return err
		}
		f.Fields = append(f.Fields, lf)
	}
	return nil
}

// classifyDefault decides how the generator materializes the field default.
func (lf *Field) classifyDefault(factory string, fd *field.Descriptor) error {
	if fd.Default == nil {
		return NewDefinitionError(factory, fd.Name, "missing default", nil)
	}
	dt := reflect.TypeOf(fd.Default)
	if dt.Kind() == reflect.Func {
		// Signature already validated by the descriptor builder.
		if dt.NumOut() == 2 {
			lf.Mode = DefaultFallibleFunc
		} else {
			lf.Mode = DefaultFunc
		}
		return nil
	}
	if dt != fd.Info.RType {
		return NewDefinitionError(factory, fd.Name,
			fmt.Sprintf("default value of type %s does not match field type %s", dt, fd.Info.RType), nil)
	}
	if !fd.Info.Type.Basic() {
		return NewDefinitionError(factory, fd.Name,
			"defaults of non-basic types must be set with DefaultFunc so every invocation gets a fresh value", nil)
	}
	lf.Mode = DefaultLiteral
	lf.Literal = fd.Default
	return nil
}

type structInfo struct {
	ref   TypeRef
	rtype reflect.Type
}

// structRef resolves the target/staging value of a definition to a named
// struct type, dereferencing a pointer if given one.
func structRef(factory, role string, v any) (structInfo, error) {
	if v == nil {
		return structInfo{}, NewDefinitionError(factory, "", "missing "+role+" type", nil)
	}
	rt := indirect(reflect.TypeOf(v))
	if rt.Kind() != reflect.Struct {
		return structInfo{}, NewDefinitionError(factory, "",
			fmt.Sprintf("%s type must be a struct, got %s", role, rt.Kind()), nil)
	}
	if rt.Name() == "" || rt.PkgPath() == "" {
		return structInfo{}, NewDefinitionError(factory, "", role+" type must be a named struct", nil)
	}
	// Generated code references the type from another package.
	if !token.IsExported(rt.Name()) {
		return structInfo{}, NewDefinitionError(factory, "",
			fmt.Sprintf("%s type %s must be exported", role, rt.Name()), nil)
	}
	return structInfo{
		ref:   TypeRef{Ident: rt.Name(), PkgPath: rt.PkgPath()},
		rtype: rt,
	}, nil
}

// stagingField finds the exported staging struct field matching a declared
// field name. Matching ignores case and underscores, so "uuid" resolves to
// UUID and "created_at" to CreatedAt.
func stagingField(staging reflect.Type, name string) (reflect.StructField, bool) {
	want := normalizeName(name)
	for i := 0; i < staging.NumField(); i++ {
		sf := staging.Field(i)
		if !sf.IsExported() {
			continue
		}
		if normalizeName(sf.Name) == want {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// factoryName derives the artifact base name. An explicit Name() may use
// either "user" or "create_user" style; the definition type name is the
// fallback.
func factoryName(def loco.Interface, dt reflect.Type) (string, error) {
	name := dt.Name()
	if n, ok := def.(loco.Namer); ok && n.Name() != "" {
		name = n.Name()
	}
	camel := inflect.Camelize(name)
	// "create_user" style names reduce to the entity part.
	if rest := strings.TrimPrefix(camel, "Create"); rest != camel && rest != "" && rest[0] >= 'A' && rest[0] <= 'Z' {
		camel = rest
	}
	if camel == "" {
		return "", NewDefinitionError(name, "", "cannot derive a factory name", nil)
	}
	return camel, nil
}

// safeFields wraps def.Fields with recover so a panicking definition is
// reported as a definition error.
func safeFields(def loco.Interface) (fields []loco.Field, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Fields panics: %v", def, v)
			fields = nil
		}
	}()
	return def.Fields(), nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
