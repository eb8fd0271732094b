package gen

import (
	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/ofabianomartins/loco-factory/compiler/load"
)

// genRuntime generates runtime.go. Its init function re-reads the factory
// definitions' descriptors and stitches every thunk default to the package
// variable its factory file declared. Literal defaults are inlined at the
// evaluation site and need no wiring.
func genRuntime(g *Generator) *jen.File {
	jf := g.newFile()

	var wired []*load.Factory
	for _, f := range g.factories {
		if len(thunkFields(f)) > 0 {
			wired = append(wired, f)
		}
	}
	if len(wired) == 0 {
		jf.Comment("No thunk defaults to wire for the generated factories.")
		return jf
	}

	jf.Comment("The init function reads the factory definitions' descriptors and wires")
	jf.Comment("their thunk defaults to the generated package variables.")
	jf.Func().Id("init").Params().BlockFunc(func(grp *jen.Group) {
		for _, f := range wired {
			genRuntimeFactoryInit(grp, f)
		}
	})

	return jf
}

// genRuntimeFactoryInit wires the thunk defaults of a single factory.
func genRuntimeFactoryInit(grp *jen.Group, f *load.Factory) {
	fieldsVar := inflect.CamelizeDownFirst(inflect.Underscore(f.Name)) + "Fields"
	grp.Id(fieldsVar).Op(":=").Qual(f.Def.PkgPath, f.Def.Ident).Values().Dot("Fields").Call()
	for _, fd := range thunkFields(f) {
		grp.Id(f.DefaultVar(fd)).Op("=").Id(fieldsVar).Index(jen.Lit(fd.Position)).
			Dot("Descriptor").Call().Dot("Default").Assert(thunkType(fd))
	}
}
