// Command gen generates type-safe GORM query code for the account models.
package main

import (
	"flag"

	"identity/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated query code")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath: *outPath,
	})

	g.ApplyBasic(model.AccountModel{})

	g.Execute()
}
