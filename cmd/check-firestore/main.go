// Diagnostic tool: verifies Firestore connectivity and prints document counts
// for the products and requests collections, plus one sample document each.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/mashtab-ss/okna-backend/internal/platform/config"
	firestoreclient "github.com/mashtab-ss/okna-backend/internal/platform/firestore"
	"google.golang.org/api/iterator"

	"cloud.google.com/go/firestore"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	client, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer client.Close()

	fmt.Printf("project %s (%s credentials)\n\n", cfg.FirebaseProjectID, credsSource)

	for _, collection := range []string{"products", "requests"} {
		if err := inspect(ctx, client, collection); err != nil {
			log.Fatalf("inspect %s: %v", collection, err)
		}
	}
}

func inspect(ctx context.Context, client *firestore.Client, collection string) error {
	iter := client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	count := 0
	var sample map[string]any
	var sampleID string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}
		if count == 0 {
			sample = doc.Data()
			sampleID = doc.Ref.ID
		}
		count++
	}

	fmt.Printf("=== %s: %d documents ===\n", collection, count)
	if sample != nil {
		pretty, err := json.MarshalIndent(sample, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("sample %s:\n%s\n\n", sampleID, pretty)
	}
	return nil
}
