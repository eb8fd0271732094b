package load

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loco "github.com/ofabianomartins/loco-factory"
	"github.com/ofabianomartins/loco-factory/factory/field"
)

type Widget struct {
	ID        int64
	Name      string
	UUID      uuid.UUID
	Score     float64
	Tags      []string
	CreatedAt time.Time
}

type WidgetDraft struct {
	Name      string
	UUID      uuid.UUID
	Score     float64
	Tags      []string
	CreatedAt time.Time
}

type WidgetFactory struct {
	loco.Factory
}

func (WidgetFactory) Name() string { return "create_widget" }
func (WidgetFactory) Target() any  { return Widget{} }
func (WidgetFactory) Staging() any { return WidgetDraft{} }

func (WidgetFactory) Fields() []loco.Field {
	return []loco.Field{
		field.String("name").Default("Test Widget"),
		field.UUID("uuid", uuid.UUID{}).DefaultFunc(uuid.New),
		field.Float64("score").Default(1.5),
		field.Other("tags", []string(nil)).DefaultFunc(func() []string { return []string{"widget"} }),
		field.Time("created_at").DefaultFunc(time.Now),
	}
}

func TestNewFactory(t *testing.T) {
	f, err := NewFactory(WidgetFactory{})
	require.NoError(t, err)

	assert.Equal(t, "Widget", f.Name)
	assert.Equal(t, "CreateWidget", f.FuncName())
	assert.Equal(t, "WidgetBuilder", f.BuilderName())
	assert.Equal(t, "NewWidgetBuilder", f.ConstructorName())
	assert.Equal(t, "widget.go", f.FileName())
	assert.False(t, f.Fallible())

	assert.Equal(t, "WidgetFactory", f.Def.Ident)
	assert.Equal(t, "Widget", f.Target.Ident)
	assert.Equal(t, "WidgetDraft", f.Staging.Ident)
	assert.Equal(t, f.Target.PkgPath, f.Staging.PkgPath)

	require.Len(t, f.Fields, 5)
	name, id, score, tags, created := f.Fields[0], f.Fields[1], f.Fields[2], f.Fields[3], f.Fields[4]

	assert.Equal(t, "Name", name.StructField)
	assert.Equal(t, DefaultLiteral, name.Mode)
	assert.Equal(t, "Test Widget", name.Literal)

	assert.Equal(t, "UUID", id.StructField)
	assert.Equal(t, "uuid", id.MemberName())
	assert.Equal(t, DefaultFunc, id.Mode)
	assert.Equal(t, 1, id.Position)
	assert.Equal(t, "widgetDefaultUUID", f.DefaultVar(id))

	assert.Equal(t, DefaultLiteral, score.Mode)
	assert.Equal(t, DefaultFunc, tags.Mode)

	assert.Equal(t, "CreatedAt", created.StructField)
	assert.Equal(t, "createdAt", created.MemberName())
	assert.Equal(t, "widgetDefaultCreatedAt", f.DefaultVar(created))
}

type GadgetFactory struct {
	loco.Factory
	fields []loco.Field
}

func (GadgetFactory) Target() any         { return Widget{} }
func (GadgetFactory) Staging() any        { return WidgetDraft{} }
func (g GadgetFactory) Fields() []loco.Field { return g.fields }

func TestNewFactory_DerivedName(t *testing.T) {
	f, err := NewFactory(GadgetFactory{fields: []loco.Field{
		field.String("name").Default("x"),
	}})
	require.NoError(t, err)
	assert.Equal(t, "GadgetFactory", f.Name)
	assert.Equal(t, "CreateGadgetFactory", f.FuncName())
}

func TestNewFactory_Fallible(t *testing.T) {
	f, err := NewFactory(GadgetFactory{fields: []loco.Field{
		field.String("name").DefaultFunc(func() (string, error) { return "x", nil }),
	}})
	require.NoError(t, err)
	require.Len(t, f.Fields, 1)
	assert.Equal(t, DefaultFallibleFunc, f.Fields[0].Mode)
	assert.True(t, f.Fallible())
}

func TestNewFactory_DuplicateField(t *testing.T) {
	_, err := NewFactory(GadgetFactory{fields: []loco.Field{
		field.String("name").Default("a"),
		field.String("name").Default("b"),
	}})
	require.Error(t, err)
	assert.True(t, IsDefinitionError(err))
	assert.Contains(t, err.Error(), "duplicate field name")
	assert.Contains(t, err.Error(), "name")
}

func TestNewFactory_UnknownStagingField(t *testing.T) {
	_, err := NewFactory(GadgetFactory{fields: []loco.Field{
		field.String("nickname").Default("a"),
	}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDefinition))
	assert.Contains(t, err.Error(), `no field matching "nickname"`)
}

func TestNewFactory_TypeMismatch(t *testing.T) {
	_, err := NewFactory(GadgetFactory{fields: []loco.Field{
		field.Int("name").Default(1),
	}})
	require.Error(t, err)
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, "name", defErr.Field)
	assert.Contains(t, err.Error(), "does not match staging field")
}

func TestNewFactory_MissingDefault(t *testing.T) {
	_, err := NewFactory(GadgetFactory{fields: []loco.Field{
		field.String("name"),
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing default")
}

type rawField struct {
	d *field.Descriptor
}

func (r rawField) Descriptor() *field.Descriptor { return r.d }

func TestNewFactory_NonBasicLiteralDefault(t *testing.T) {
	_, err := NewFactory(GadgetFactory{fields: []loco.Field{
		rawField{&field.Descriptor{
			Name: "tags",
			Info: &field.TypeInfo{
				Type:  field.TypeOther,
				RType: reflect.TypeOf([]string(nil)),
			},
			Default: []string{"shared"},
		}},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DefaultFunc")
}

func TestNewFactory_DescriptorError(t *testing.T) {
	_, err := NewFactory(GadgetFactory{fields: []loco.Field{
		field.String("name").DefaultFunc(func() int { return 0 }),
	}})
	require.Error(t, err)
	assert.True(t, IsDefinitionError(err))
}

type noTargetFactory struct {
	loco.Factory
}

func (noTargetFactory) Staging() any { return WidgetDraft{} }

func TestNewFactory_MissingTarget(t *testing.T) {
	_, err := NewFactory(noTargetFactory{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing target type")
}

type badTargetFactory struct {
	loco.Factory
}

func (badTargetFactory) Target() any  { return 42 }
func (badTargetFactory) Staging() any { return WidgetDraft{} }

func TestNewFactory_TargetNotStruct(t *testing.T) {
	_, err := NewFactory(badTargetFactory{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target type must be a struct")
}

type panicFactory struct {
	loco.Factory
}

func (panicFactory) Target() any          { return Widget{} }
func (panicFactory) Staging() any         { return WidgetDraft{} }
func (panicFactory) Fields() []loco.Field { panic("boom") }

func TestNewFactory_FieldsPanic(t *testing.T) {
	_, err := NewFactory(panicFactory{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panics")
}

type hiddenDraft struct {
	Name string
}

type hiddenStagingFactory struct {
	loco.Factory
}

func (hiddenStagingFactory) Target() any  { return Widget{} }
func (hiddenStagingFactory) Staging() any { return hiddenDraft{} }

func (hiddenStagingFactory) Fields() []loco.Field {
	return []loco.Field{field.String("name").Default("x")}
}

func TestNewFactory_UnexportedStaging(t *testing.T) {
	_, err := NewFactory(hiddenStagingFactory{})
	require.Error(t, err)
	assert.True(t, IsDefinitionError(err))
	assert.Contains(t, err.Error(), "staging type hiddenDraft must be exported")
}

type hiddenDefFactory struct {
	loco.Factory
}

func (hiddenDefFactory) Target() any  { return Widget{} }
func (hiddenDefFactory) Staging() any { return WidgetDraft{} }

func (hiddenDefFactory) Fields() []loco.Field {
	return []loco.Field{field.Time("created_at").DefaultFunc(time.Now)}
}

type hiddenLiteralFactory struct {
	loco.Factory
}

func (hiddenLiteralFactory) Target() any  { return Widget{} }
func (hiddenLiteralFactory) Staging() any { return WidgetDraft{} }

func (hiddenLiteralFactory) Fields() []loco.Field {
	return []loco.Field{field.String("name").Default("x")}
}

func TestNewFactory_UnexportedDefinition(t *testing.T) {
	// Thunk defaults are wired by constructing the definition from the
	// generated package, so such definitions must be exported.
	_, err := NewFactory(hiddenDefFactory{})
	require.Error(t, err)
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, "created_at", defErr.Field)
	assert.Contains(t, err.Error(), "hiddenDefFactory must be exported")

	// Literal-only definitions are never referenced by generated code.
	f, err := NewFactory(hiddenLiteralFactory{})
	require.NoError(t, err)
	assert.Equal(t, "HiddenLiteralFactory", f.Name)
}

type ReservedDraft struct {
	Consumed bool
}

type reservedFactory struct {
	loco.Factory
}

func (reservedFactory) Target() any  { return Widget{} }
func (reservedFactory) Staging() any { return ReservedDraft{} }

func (reservedFactory) Fields() []loco.Field {
	return []loco.Field{field.Bool("consumed").Default(true)}
}

func TestNewFactory_ReservedFieldName(t *testing.T) {
	_, err := NewFactory(reservedFactory{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestFactories(t *testing.T) {
	fs, err := Factories(WidgetFactory{}, GadgetFactory{fields: []loco.Field{
		field.String("name").Default("x"),
	}})
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, "Widget", fs[0].Name)
	assert.Equal(t, "GadgetFactory", fs[1].Name)
}

func TestFactories_DuplicateName(t *testing.T) {
	_, err := Factories(WidgetFactory{}, WidgetFactory{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate factory name")
}

func TestStagingFieldMatching(t *testing.T) {
	typ := reflect.TypeOf(WidgetDraft{})
	sf, ok := stagingField(typ, "uuid")
	require.True(t, ok)
	assert.Equal(t, "UUID", sf.Name)

	sf, ok = stagingField(typ, "created_at")
	require.True(t, ok)
	assert.Equal(t, "CreatedAt", sf.Name)

	_, ok = stagingField(typ, "missing")
	assert.False(t, ok)
}
