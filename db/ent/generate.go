package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/Alan-K-Biju-7/waresys-mvp/gen/ent",
			Schema:  "github.com/Alan-K-Biju-7/waresys-mvp/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
