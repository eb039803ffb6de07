// Command gen writes type-safe GORM query builders for the persistence models.
package main

import (
	"flag"

	"atelier/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated code")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.UserModel{},
		model.CollectionModel{},
		model.ProductModel{},
		model.SizeModel{},
		model.NFTModel{},
		model.NFTEventModel{},
	)

	g.Execute()
}
