package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Tables owned by the gorm storage adapter, keyed to the model names used in
// internal/adapter/repo/gorm/model.
var tables = map[string]string{
	"buddy_snapshots": "Snapshot",
	"buddy_events":    "DomainEvent",
}

func main() {
	var dsn, out string
	flag.StringVar(&dsn, "dsn", os.Getenv("BUDDY_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or BUDDY_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	for table, name := range tables {
		g.GenerateModelAs(table, name)
	}
	g.Execute()

	fmt.Printf("generated %d gorm models at %s\n", len(tables), out)
}
