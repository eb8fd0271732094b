package gen

import (
	"fmt"
	"reflect"

	"github.com/dave/jennifer/jen"

	"github.com/ofabianomartins/loco-factory/compiler/load"
)

// genFactory generates the artifact file for a single factory: the builder
// type, its constructor, one setter per field, the Build/Create terminal
// operations and the convenience entrypoint.
func genFactory(g *Generator, f *load.Factory) *jen.File {
	jf := g.newFile()

	genEntrypoint(jf, f)
	genBuilderType(jf, f)
	genConstructor(jf, f)
	for _, fd := range f.Fields {
		genSetter(jf, f, fd)
	}
	genBuild(jf, f)
	genCreate(jf, f)
	genDefaultVars(jf, f)

	return jf
}

// genEntrypoint generates the Create<Name> convenience function. It shares
// the builder's default set: a factory call with no customization and a
// builder with no overrides are the same operation.
func genEntrypoint(jf *jen.File, f *load.Factory) {
	jf.Commentf("%s creates a %s populated with the factory defaults and persists it through s.", f.FuncName(), f.Target.Ident)
	jf.Comment("Defaults are evaluated fresh on every call.")
	jf.Func().Id(f.FuncName()).Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("s").Add(saverType(f)),
	).Params(targetType(f), jen.Error()).Block(
		jen.Return(jen.Id(f.ConstructorName()).Call().Dot("Create").Call(jen.Id("ctx"), jen.Id("s"))),
	)
}

func genBuilderType(jf *jen.File, f *load.Factory) {
	jf.Commentf("%s accumulates field overrides for building a %s.", f.BuilderName(), f.Staging.Ident)
	jf.Comment("A builder is single-use: it is consumed by Build or Create and must not")
	jf.Comment("be shared across goroutines.")
	jf.Type().Id(f.BuilderName()).StructFunc(func(grp *jen.Group) {
		for _, fd := range f.Fields {
			grp.Id(fd.MemberName()).Op("*").Add(goType(fd.Info.RType))
		}
		grp.Id("consumed").Bool()
	})
}

func genConstructor(jf *jen.File, f *load.Factory) {
	jf.Commentf("%s returns a fresh %s with no overrides set.", f.ConstructorName(), f.BuilderName())
	jf.Func().Id(f.ConstructorName()).Params().Op("*").Id(f.BuilderName()).Block(
		jen.Return(jen.Op("&").Id(f.BuilderName()).Values()),
	)
}

// genSetter generates the fluent override setter for one field.
func genSetter(jf *jen.File, f *load.Factory, fd *load.Field) {
	jf.Commentf("%s overrides the %q field.", fd.StructField, fd.Name)
	jf.Func().Params(jen.Id("b").Op("*").Id(f.BuilderName())).Id(fd.StructField).Params(
		jen.Id("v").Add(goType(fd.Info.RType)),
	).Op("*").Id(f.BuilderName()).Block(
		consumedGuard(f, fd.StructField),
		jen.Id("b").Dot(fd.MemberName()).Op("=").Op("&").Id("v"),
		jen.Return(jen.Id("b")),
	)
}

// genBuild generates the Build terminal operation. For each field it takes
// the override if set, otherwise evaluates the default fresh, in declaration
// order. Factories with fallible defaults get a (staging, error) signature
// and a panicking BuildX.
func genBuild(jf *jen.File, f *load.Factory) {
	jf.Commentf("Build assembles a %s, taking overrides where set and evaluating", f.Staging.Ident)
	jf.Comment("factory defaults fresh otherwise. It performs no I/O and consumes the builder.")
	fn := jf.Func().Params(jen.Id("b").Op("*").Id(f.BuilderName())).Id("Build").Params()
	if f.Fallible() {
		fn.Params(stagingType(f), jen.Error())
	} else {
		fn.Add(stagingType(f))
	}
	fn.BlockFunc(func(grp *jen.Group) {
		grp.Add(consumedGuard(f, "Build"))
		grp.Id("b").Dot("consumed").Op("=").True()
		grp.Id("d").Op(":=").Op("&").Qual(f.Staging.PkgPath, f.Staging.Ident).Values()
		for _, fd := range f.Fields {
			genFieldAssign(grp, f, fd)
		}
		if f.Fallible() {
			grp.Return(jen.Id("d"), jen.Nil())
		} else {
			grp.Return(jen.Id("d"))
		}
	})

	if f.Fallible() {
		jf.Comment("BuildX is like Build, but panics if a default evaluation fails.")
		jf.Func().Params(jen.Id("b").Op("*").Id(f.BuilderName())).Id("BuildX").Params().Add(stagingType(f)).Block(
			jen.List(jen.Id("d"), jen.Id("err")).Op(":=").Id("b").Dot("Build").Call(),
			jen.If(jen.Id("err").Op("!=").Nil()).Block(jen.Panic(jen.Id("err"))),
			jen.Return(jen.Id("d")),
		)
	}
}

// genFieldAssign generates the override-or-default assignment for one field.
func genFieldAssign(grp *jen.Group, f *load.Factory, fd *load.Field) {
	override := jen.Id("d").Dot(fd.StructField).Op("=").Op("*").Id("b").Dot(fd.MemberName())
	cond := jen.If(jen.Id("b").Dot(fd.MemberName()).Op("!=").Nil()).Block(override)
	switch fd.Mode {
	case load.DefaultLiteral:
		cond.Else().Block(
			jen.Id("d").Dot(fd.StructField).Op("=").Lit(fd.Literal),
		)
	case load.DefaultFunc:
		cond.Else().Block(
			jen.Id("d").Dot(fd.StructField).Op("=").Id(f.DefaultVar(fd)).Call(),
		)
	case load.DefaultFallibleFunc:
		cond.Else().Block(
			jen.List(jen.Id("v"), jen.Id("err")).Op(":=").Id(f.DefaultVar(fd)).Call(),
			jen.If(jen.Id("err").Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual(locoPkg, "NewDefaultError").Call(
					jen.Lit(f.Name), jen.Lit(fd.Name), jen.Id("err"),
				)),
			),
			jen.Id("d").Dot(fd.StructField).Op("=").Id("v"),
		)
	}
	grp.Add(cond)
}

// genCreate generates the Create terminal operation and its panicking variant.
func genCreate(jf *jen.File, f *load.Factory) {
	jf.Commentf("Create builds the %s and persists it through s, returning the", f.Staging.Ident)
	jf.Commentf("stored %s. Adapter errors propagate unchanged.", f.Target.Ident)
	jf.Func().Params(jen.Id("b").Op("*").Id(f.BuilderName())).Id("Create").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("s").Add(saverType(f)),
	).Params(targetType(f), jen.Error()).BlockFunc(func(grp *jen.Group) {
		if f.Fallible() {
			grp.List(jen.Id("d"), jen.Id("err")).Op(":=").Id("b").Dot("Build").Call()
			grp.If(jen.Id("err").Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Id("err")))
			grp.Return(jen.Id("s").Dot("Save").Call(jen.Id("ctx"), jen.Id("d")))
		} else {
			grp.Return(jen.Id("s").Dot("Save").Call(jen.Id("ctx"), jen.Id("b").Dot("Build").Call()))
		}
	})

	jf.Comment("CreateX is like Create, but panics if an error occurs.")
	jf.Func().Params(jen.Id("b").Op("*").Id(f.BuilderName())).Id("CreateX").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("s").Add(saverType(f)),
	).Add(targetType(f)).Block(
		jen.List(jen.Id("v"), jen.Id("err")).Op(":=").Id("b").Dot("Create").Call(jen.Id("ctx"), jen.Id("s")),
		jen.If(jen.Id("err").Op("!=").Nil()).Block(jen.Panic(jen.Id("err"))),
		jen.Return(jen.Id("v")),
	)
}

// genDefaultVars declares the package variables thunk defaults are wired
// into by the generated runtime.go.
func genDefaultVars(jf *jen.File, f *load.Factory) {
	thunks := thunkFields(f)
	if len(thunks) == 0 {
		return
	}
	jf.Comment("Thunk defaults, wired from the factory definitions in runtime.go.")
	jf.Var().DefsFunc(func(grp *jen.Group) {
		for _, fd := range thunks {
			grp.Id(f.DefaultVar(fd)).Add(thunkType(fd))
		}
	})
}

// thunkFields returns the fields whose defaults are wired at runtime.
func thunkFields(f *load.Factory) []*load.Field {
	var out []*load.Field
	for _, fd := range f.Fields {
		if fd.Mode != load.DefaultLiteral {
			out = append(out, fd)
		}
	}
	return out
}

// thunkType returns the function type of a field's thunk default.
func thunkType(fd *load.Field) jen.Code {
	if fd.Fallible() {
		return jen.Func().Params().Params(goType(fd.Info.RType), jen.Error())
	}
	return jen.Func().Params().Add(goType(fd.Info.RType))
}

func consumedGuard(f *load.Factory, op string) jen.Code {
	return jen.If(jen.Id("b").Dot("consumed")).Block(
		jen.Panic(jen.Qual(locoPkg, "NewUsageError").Call(jen.Lit(f.Name), jen.Lit(op))),
	)
}

func saverType(f *load.Factory) jen.Code {
	return jen.Qual(locoPkg, "Saver").Index(jen.List(stagingType(f), targetType(f)))
}

func stagingType(f *load.Factory) *jen.Statement {
	return jen.Op("*").Qual(f.Staging.PkgPath, f.Staging.Ident)
}

func targetType(f *load.Factory) *jen.Statement {
	return jen.Op("*").Qual(f.Target.PkgPath, f.Target.Ident)
}

// goType returns the Jennifer code for a reflected Go type. Named types are
// import-qualified; composites recurse.
func goType(t reflect.Type) jen.Code {
	if t.PkgPath() != "" {
		return jen.Qual(t.PkgPath(), t.Name())
	}
	switch t.Kind() {
	case reflect.Pointer:
		return jen.Op("*").Add(goType(t.Elem()))
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 && t.Elem().PkgPath() == "" {
			return jen.Index().Byte()
		}
		return jen.Index().Add(goType(t.Elem()))
	case reflect.Array:
		return jen.Index(jen.Lit(t.Len())).Add(goType(t.Elem()))
	case reflect.Map:
		return jen.Map(goType(t.Key())).Add(goType(t.Elem()))
	default:
		// Builtin kinds carry their own name (string, int64, ...).
		if t.Name() != "" {
			return jen.Id(t.Name())
		}
		panic(fmt.Sprintf("gen: unsupported field type %s", t))
	}
}
