package field

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

// A Type represents a field kind.
type Type uint8

// List of field kinds.
const (
	TypeInvalid Type = iota
	TypeString
	TypeBool
	TypeInt
	TypeInt64
	TypeFloat64
	TypeTime
	TypeUUID
	TypeBytes
	TypeOther
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeString:  "string",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeFloat64: "float64",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid",
	TypeBytes:   "bytes",
	TypeOther:   "other",
}

// String returns the name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Basic reports whether values of this kind can be inlined as Go literals
// by the generator. Non-basic defaults must be provided as thunks so every
// invocation evaluates a fresh value.
func (t Type) Basic() bool {
	switch t {
	case TypeString, TypeBool, TypeInt, TypeInt64, TypeFloat64:
		return true
	default:
		return false
	}
}

// TypeInfo holds the Go type information of a field.
type TypeInfo struct {
	Type    Type
	Ident   string       // Go identifier of the type (e.g. "uuid.UUID").
	PkgPath string       // import path of a named type, empty for builtins.
	RType   reflect.Type // reflected field type.
}

// String returns the Go identifier of the type.
func (t *TypeInfo) String() string {
	if t.Ident != "" {
		return t.Ident
	}
	return t.Type.String()
}

// A Descriptor for field configuration. It is the unit consumed by
// compiler/load when assembling a factory model.
type Descriptor struct {
	Name    string    // name of the declared field.
	Info    *TypeInfo // Go type information.
	Default any       // literal value or zero-argument thunk.
	Err     error     // first error captured while building the descriptor.
}

func newDescriptor(name string, info *TypeInfo) *Descriptor {
	d := &Descriptor{Name: name, Info: info}
	if name == "" {
		d.Err = errors.New("field name cannot be empty")
	}
	return d
}

// setDefaultFunc validates and stores a thunk default. Accepted signatures
// are func() T and func() (T, error), where T is the field type.
func (d *Descriptor) setDefaultFunc(fn any) {
	if fn == nil {
		d.merr(fmt.Errorf("nil default function"))
		return
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func || t.NumIn() != 0 {
		d.merr(fmt.Errorf("default must be a zero-argument function, got %s", t))
		return
	}
	switch t.NumOut() {
	case 1:
	case 2:
		// The generated runtime asserts func() (T, error) exactly, so a
		// concrete error type in the signature is rejected here.
		if t.Out(1) != reflect.TypeOf((*error)(nil)).Elem() {
			d.merr(fmt.Errorf("second return value of default must be error, got %s", t.Out(1)))
			return
		}
	default:
		d.merr(fmt.Errorf("default must return T or (T, error), got %s", t))
		return
	}
	if d.Info.RType != nil && t.Out(0) != d.Info.RType {
		d.merr(fmt.Errorf("default returns %s, field type is %s", t.Out(0), d.Info.RType))
		return
	}
	d.Default = fn
}

// merr keeps the first error encountered while building the descriptor.
func (d *Descriptor) merr(err error) {
	if d.Err == nil {
		d.Err = fmt.Errorf("field %q: %w", d.Name, err)
	}
}

func infoFor(t Type, rt reflect.Type) *TypeInfo {
	info := &TypeInfo{Type: t, RType: rt}
	if rt != nil {
		info.PkgPath = rt.PkgPath()
		info.Ident = rt.String()
	}
	return info
}

// String returns a new string field with the given name.
func String(name string) *StringBuilder {
	return &StringBuilder{newDescriptor(name, infoFor(TypeString, reflect.TypeOf("")))}
}

// Bool returns a new bool field with the given name.
func Bool(name string) *BoolBuilder {
	return &BoolBuilder{newDescriptor(name, infoFor(TypeBool, reflect.TypeOf(false)))}
}

// Int returns a new int field with the given name.
func Int(name string) *IntBuilder {
	return &IntBuilder{newDescriptor(name, infoFor(TypeInt, reflect.TypeOf(int(0))))}
}

// Int64 returns a new int64 field with the given name.
func Int64(name string) *Int64Builder {
	return &Int64Builder{newDescriptor(name, infoFor(TypeInt64, reflect.TypeOf(int64(0))))}
}

// Float64 returns a new float64 field with the given name.
func Float64(name string) *Float64Builder {
	return &Float64Builder{newDescriptor(name, infoFor(TypeFloat64, reflect.TypeOf(float64(0))))}
}

// Time returns a new time.Time field with the given name.
func Time(name string) *TimeBuilder {
	return &TimeBuilder{newDescriptor(name, infoFor(TypeTime, reflect.TypeOf(time.Time{})))}
}

// UUID returns a new field with the given name and UUID type taken from the
// given value, e.g. field.UUID("uuid", uuid.UUID{}).
func UUID(name string, typ any) *UUIDBuilder {
	b := &UUIDBuilder{newDescriptor(name, infoFor(TypeUUID, reflect.TypeOf(typ)))}
	if typ == nil {
		b.desc.merr(errors.New("nil uuid type value"))
	}
	return b
}

// Bytes returns a new []byte field with the given name.
func Bytes(name string) *BytesBuilder {
	return &BytesBuilder{newDescriptor(name, infoFor(TypeBytes, reflect.TypeOf([]byte(nil))))}
}

// Other returns a field whose type is taken from the given value. It is the
// escape hatch for staging field types the builders above do not cover:
//
//	field.Other("tags", []string(nil)).DefaultFunc(func() []string { ... })
func Other(name string, typ any) *OtherBuilder {
	b := &OtherBuilder{newDescriptor(name, infoFor(TypeOther, reflect.TypeOf(typ)))}
	if typ == nil {
		b.desc.merr(errors.New("nil type value"))
	}
	return b
}

// StringBuilder is the builder for string fields.
type StringBuilder struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *StringBuilder) Default(v string) *StringBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
// Accepted signatures are func() string and func() (string, error).
func (b *StringBuilder) DefaultFunc(fn any) *StringBuilder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *StringBuilder) Descriptor() *Descriptor { return b.desc }

// BoolBuilder is the builder for bool fields.
type BoolBuilder struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *BoolBuilder) Default(v bool) *BoolBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
func (b *BoolBuilder) DefaultFunc(fn any) *BoolBuilder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *BoolBuilder) Descriptor() *Descriptor { return b.desc }

// IntBuilder is the builder for int fields.
type IntBuilder struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *IntBuilder) Default(v int) *IntBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
func (b *IntBuilder) DefaultFunc(fn any) *IntBuilder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *IntBuilder) Descriptor() *Descriptor { return b.desc }

// Int64Builder is the builder for int64 fields.
type Int64Builder struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *Int64Builder) Default(v int64) *Int64Builder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
func (b *Int64Builder) DefaultFunc(fn any) *Int64Builder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *Int64Builder) Descriptor() *Descriptor { return b.desc }

// Float64Builder is the builder for float64 fields.
type Float64Builder struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *Float64Builder) Default(v float64) *Float64Builder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
func (b *Float64Builder) DefaultFunc(fn any) *Float64Builder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *Float64Builder) Descriptor() *Descriptor { return b.desc }

// TimeBuilder is the builder for time.Time fields. Time defaults are always
// thunks (e.g. time.Now) so each invocation observes a fresh value.
type TimeBuilder struct {
	desc *Descriptor
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
// Accepted signatures are func() time.Time and func() (time.Time, error).
func (b *TimeBuilder) DefaultFunc(fn any) *TimeBuilder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *TimeBuilder) Descriptor() *Descriptor { return b.desc }

// UUIDBuilder is the builder for UUID fields. UUID defaults are always
// thunks (e.g. uuid.New) so each invocation draws a distinct identifier.
type UUIDBuilder struct {
	desc *Descriptor
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
func (b *UUIDBuilder) DefaultFunc(fn any) *UUIDBuilder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *UUIDBuilder) Descriptor() *Descriptor { return b.desc }

// BytesBuilder is the builder for []byte fields.
type BytesBuilder struct {
	desc *Descriptor
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
func (b *BytesBuilder) DefaultFunc(fn any) *BytesBuilder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *BytesBuilder) Descriptor() *Descriptor { return b.desc }

// OtherBuilder is the builder for fields of arbitrary Go types.
type OtherBuilder struct {
	desc *Descriptor
}

// DefaultFunc sets a thunk default, evaluated fresh on every Build or Create.
func (b *OtherBuilder) DefaultFunc(fn any) *OtherBuilder {
	b.desc.setDefaultFunc(fn)
	return b
}

// Descriptor implements the loco.Field interface.
func (b *OtherBuilder) Descriptor() *Descriptor { return b.desc }
