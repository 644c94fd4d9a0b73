package main

import (
	"servicemap/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the directory view.
func main() {
	models := []any{
		model.ServiceLocationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
