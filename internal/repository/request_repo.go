package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mashtab-ss/okna-backend/internal/business/quote"
	"github.com/mashtab-ss/okna-backend/pkg/model"
	"google.golang.org/api/iterator"
)

const requestsCollection = "requests"

// RequestRepository handles Firestore read/write for customer requests.
type RequestRepository struct {
	client *firestore.Client
	now    func() time.Time
}

func NewRequestRepository(client *firestore.Client) *RequestRepository {
	return &RequestRepository{client: client, now: time.Now}
}

// List loads all customer requests.
func (r *RequestRepository) List(ctx context.Context) ([]model.CustomerRequest, error) {
	iter := r.client.Collection(requestsCollection).Documents(ctx)
	defer iter.Stop()

	var requests []model.CustomerRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate requests: %w", err)
		}
		var req model.CustomerRequest
		if err := doc.DataTo(&req); err != nil {
			return nil, fmt.Errorf("decode request %s: %w", doc.Ref.ID, err)
		}
		req.ID = doc.Ref.ID
		requests = append(requests, req)
	}
	return requests, nil
}

// Create persists a new request. The server owns id, date and status: any
// client-supplied values are discarded, status is always "new" and date is
// the current UTC time. When a calculator snapshot is attached it is
// normalized server-side: the area is recomputed from the submitted
// dimensions, duplicate feature codes are dropped and the quantity is
// clamped to a minimum of 1.
func (r *RequestRepository) Create(ctx context.Context, req model.CustomerRequest) (model.CustomerRequest, error) {
	ref := r.client.Collection(requestsCollection).NewDoc()
	req.ID = ref.ID
	req.Date = r.now().UTC().Format(time.RFC3339)
	req.Status = model.StatusNew
	if req.CalculatorData != nil {
		req.CalculatorData.Area = quote.Area(req.CalculatorData.Width, req.CalculatorData.Height)
		req.CalculatorData.AdditionalFeatures = quote.NormalizeFeatures(req.CalculatorData.AdditionalFeatures)
		if req.CalculatorData.Quantity < 1 {
			req.CalculatorData.Quantity = 1
		}
	}
	if _, err := ref.Create(ctx, req); err != nil {
		return model.CustomerRequest{}, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

// Update applies a partial field merge to an existing request and returns the
// updated entity. Missing documents surface as ErrNotFound.
func (r *RequestRepository) Update(ctx context.Context, id string, fields map[string]any) (model.CustomerRequest, error) {
	updates, err := fieldUpdates(fields)
	if err != nil {
		return model.CustomerRequest{}, err
	}

	ref := r.client.Collection(requestsCollection).Doc(id)
	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return model.CustomerRequest{}, fmt.Errorf("request %s: %w", id, ErrNotFound)
		}
		return model.CustomerRequest{}, fmt.Errorf("update request %s: %w", id, err)
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		return model.CustomerRequest{}, fmt.Errorf("reload request %s: %w", id, err)
	}
	var req model.CustomerRequest
	if err := doc.DataTo(&req); err != nil {
		return model.CustomerRequest{}, fmt.Errorf("decode request %s: %w", id, err)
	}
	req.ID = doc.Ref.ID
	return req, nil
}

// UpdateStatus moves a request to the given status. All transitions between
// defined statuses are permitted; the value itself must be one of the four
// known statuses.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id, newStatus string) (model.CustomerRequest, error) {
	if !model.ValidStatus(newStatus) {
		return model.CustomerRequest{}, fmt.Errorf("invalid status %q", newStatus)
	}
	return r.Update(ctx, id, map[string]any{"status": newStatus})
}

// Delete removes a request. Returns true when a document was removed and
// false when nothing matched; a missing id is not an error.
func (r *RequestRepository) Delete(ctx context.Context, id string) (bool, error) {
	ref := r.client.Collection(requestsCollection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("lookup request %s: %w", id, err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return false, fmt.Errorf("delete request %s: %w", id, err)
	}
	return true, nil
}
