package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/mashtab-ss/okna-backend/pkg/model"
	"google.golang.org/api/iterator"
)

const productsCollection = "products"

// ProductRepository handles Firestore read/write for catalog products.
type ProductRepository struct {
	client *firestore.Client
}

func NewProductRepository(client *firestore.Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// List loads all catalog products. No ordering is guaranteed; callers sort if
// they need an order.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	var products []model.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate products: %w", err)
		}
		var p model.Product
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		products = append(products, p)
	}
	return products, nil
}

// Create assigns a fresh document id, persists the product and returns it
// with the id filled in.
func (r *ProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	ref := r.client.Collection(productsCollection).NewDoc()
	p.ID = ref.ID
	if _, err := ref.Create(ctx, p); err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update applies a partial field merge to an existing product and returns the
// updated entity. Missing documents surface as ErrNotFound.
func (r *ProductRepository) Update(ctx context.Context, id string, fields map[string]any) (model.Product, error) {
	updates, err := fieldUpdates(fields)
	if err != nil {
		return model.Product{}, err
	}

	ref := r.client.Collection(productsCollection).Doc(id)
	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return model.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return model.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		return model.Product{}, fmt.Errorf("reload product %s: %w", id, err)
	}
	var p model.Product
	if err := doc.DataTo(&p); err != nil {
		return model.Product{}, fmt.Errorf("decode product %s: %w", id, err)
	}
	p.ID = doc.Ref.ID
	return p, nil
}

// Delete removes a product. Returns true when a document was removed and
// false when nothing matched; a missing id is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	ref := r.client.Collection(productsCollection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("lookup product %s: %w", id, err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return false, fmt.Errorf("delete product %s: %w", id, err)
	}
	return true, nil
}

// fieldUpdates converts a partial document into Firestore field updates,
// refusing attempts to rewrite the immutable id.
func fieldUpdates(fields map[string]any) ([]firestore.Update, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		if k == "id" {
			return nil, fmt.Errorf("field id is immutable")
		}
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	return updates, nil
}
