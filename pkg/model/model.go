package model

// Product is a catalog entry stored in the `products` collection.
type Product struct {
	ID             string            `json:"id,omitempty" firestore:"id,omitempty"`
	Name           string            `json:"name,omitempty" firestore:"name,omitempty"`
	Description    string            `json:"description,omitempty" firestore:"description,omitempty"`
	Rating         float64           `json:"rating,omitempty" firestore:"rating,omitempty"`
	Image          string            `json:"image,omitempty" firestore:"image,omitempty"` // cover image, duplicates images[0]
	Category       string            `json:"category,omitempty" firestore:"category,omitempty"`
	Features       []string          `json:"features,omitempty" firestore:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" firestore:"specifications,omitempty"`
	Images         []string          `json:"images,omitempty" firestore:"images,omitempty"`
}

// SelectedProduct is the weak product reference embedded in calculator
// snapshots. Display fields only, no ownership.
type SelectedProduct struct {
	ID       string `json:"id,omitempty" firestore:"id,omitempty"`
	Name     string `json:"name,omitempty" firestore:"name,omitempty"`
	Category string `json:"category,omitempty" firestore:"category,omitempty"`
}

// CalculatorData is the quote configuration snapshot embedded by value in a
// CustomerRequest at submission time. Area is derived from width/height and
// stored alongside them.
type CalculatorData struct {
	Width              float64          `json:"width,omitempty" firestore:"width,omitempty"`
	Height             float64          `json:"height,omitempty" firestore:"height,omitempty"`
	Area               string           `json:"area,omitempty" firestore:"area,omitempty"`
	WindowType         string           `json:"windowType,omitempty" firestore:"windowType,omitempty"`
	Material           string           `json:"material,omitempty" firestore:"material,omitempty"`
	GlazingType        string           `json:"glazingType,omitempty" firestore:"glazingType,omitempty"`
	AdditionalFeatures []string         `json:"additionalFeatures,omitempty" firestore:"additionalFeatures,omitempty"`
	Quantity           int              `json:"quantity,omitempty" firestore:"quantity,omitempty"`
	SelectedProduct    *SelectedProduct `json:"selectedProduct,omitempty" firestore:"selectedProduct,omitempty"`
}

// Request statuses. A request is always created as StatusNew; the store
// permits transitions between any two statuses.
const (
	StatusNew        = "new"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// ValidStatus reports whether s is one of the four defined statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusProcessing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// CustomerRequest is a customer inquiry stored in the `requests` collection.
// Date and Status are server-assigned on creation.
type CustomerRequest struct {
	ID             string          `json:"id,omitempty" firestore:"id,omitempty"`
	Name           string          `json:"name,omitempty" firestore:"name,omitempty"`
	Email          string          `json:"email,omitempty" firestore:"email,omitempty"`
	Phone          string          `json:"phone,omitempty" firestore:"phone,omitempty"`
	Message        string          `json:"message,omitempty" firestore:"message,omitempty"`
	Date           string          `json:"date,omitempty" firestore:"date,omitempty"`
	Status         string          `json:"status,omitempty" firestore:"status,omitempty"`
	CalculatorData *CalculatorData `json:"calculatorData,omitempty" firestore:"calculatorData,omitempty"`
}

// Ref returns the weak reference used when this product is linked from a
// calculator snapshot.
func (p Product) Ref() SelectedProduct {
	return SelectedProduct{ID: p.ID, Name: p.Name, Category: p.Category}
}
