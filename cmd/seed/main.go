// Seeds the built-in demo catalog into the products collection. Existing
// products with the same name are skipped, so re-running is safe.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/mashtab-ss/okna-backend/internal/platform/config"
	firestoreclient "github.com/mashtab-ss/okna-backend/internal/platform/firestore"
	"github.com/mashtab-ss/okna-backend/internal/repository"
	"github.com/mashtab-ss/okna-backend/pkg/model"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	client, _, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer client.Close()

	repo := repository.NewProductRepository(client)

	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, p := range existing {
		byName[p.Name] = true
	}

	seeded := 0
	for _, p := range model.DemoProducts() {
		if byName[p.Name] {
			log.Printf("skip %q: already present", p.Name)
			continue
		}
		p.ID = ""
		created, err := repo.Create(ctx, p)
		if err != nil {
			log.Fatalf("create %q: %v", p.Name, err)
		}
		log.Printf("created %q as %s", created.Name, created.ID)
		seeded++
	}
	log.Printf("done: %d created, %d skipped", seeded, len(model.DemoProducts())-seeded)
}
