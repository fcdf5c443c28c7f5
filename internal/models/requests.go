package models

// CreateSweetRequest carries the fields for a new sweet. Price and Quantity
// are pointers so a missing field is distinguishable from a zero value.
type CreateSweetRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// UpdateSweetRequest carries a partial update. Absent fields keep their
// current values.
type UpdateSweetRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// StockRequest is the body of purchase and restock calls
type StockRequest struct {
	Quantity int `json:"quantity"`
}

// PurchaseResult is returned after a successful purchase
type PurchaseResult struct {
	Sweet             Sweet `json:"sweet"`
	PurchasedQuantity int   `json:"purchasedQuantity"`
	RemainingStock    int   `json:"remainingStock"`
}

// RestockResult is returned after a successful restock
type RestockResult struct {
	Sweet             Sweet `json:"sweet"`
	RestockedQuantity int   `json:"restockedQuantity"`
	TotalStock        int   `json:"totalStock"`
}
