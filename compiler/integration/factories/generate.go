//go:build ignore

package main

import (
	"context"
	"log"

	"github.com/ofabianomartins/loco-factory/compiler/gen"
	"github.com/ofabianomartins/loco-factory/compiler/integration/factories"
)

func main() {
	err := gen.Generate(context.Background(), gen.Config{
		Package: "github.com/ofabianomartins/loco-factory/compiler/integration/gen",
		Target:  "../gen",
	}, factories.User{}, factories.Post{})
	if err != nil {
		log.Fatalln("loco:", err)
	}
}
