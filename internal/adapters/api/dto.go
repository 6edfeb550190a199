package api

// Wire shapes of the restaurant API. The menu response unmarshals straight
// into the domain types (their json tags match the upstream schema); orders
// have their own DTOs because the request is a write-only projection.

type createOrderRequest struct {
	TableNumber string                   `json:"table_number"`
	OrderType   string                   `json:"order_type"`
	Items       []createOrderRequestItem `json:"items"`
}

type createOrderRequestItem struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	OptionIDs []string `json:"option_ids"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	TableNumber string              `json:"table_number"`
	TotalPrice  float64             `json:"total_price"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"created_at"`
	Items       []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ProductName     string                `json:"product_name"`
	Quantity        int                   `json:"quantity"`
	UnitPrice       float64               `json:"unit_price"`
	SelectedOptions []orderItemOptionResp `json:"selected_options"`
}

type orderItemOptionResp struct {
	OptionName string  `json:"option_name"`
	PriceDelta float64 `json:"price_delta"`
}

type orderStatusUpdate struct {
	Status string `json:"status"`
}
