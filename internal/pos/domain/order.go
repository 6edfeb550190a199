package domain

// Order type tags sent with every checkout.
const (
	OrderTypeDineIn  = "dine_in"
	OrderTypeTakeout = "takeout"
)

// TakeoutTable is the designator substituting for a table number on takeout
// orders.
const TakeoutTable = "TAKEOUT"

// OrderRequest is the write-only projection of a cart submitted to the order
// endpoint. Prices are deliberately absent: the server recomputes them from
// the product and option ids.
type OrderRequest struct {
	TableNumber string
	OrderType   string
	Items       []OrderRequestItem
}

type OrderRequestItem struct {
	ProductID string
	Quantity  int
	OptionIDs []string
}

// OrderConfirmation is the server's acknowledgement of a created order.
type OrderConfirmation struct {
	OrderID     string
	TableNumber string
	TotalPrice  float64
	Status      string
	CreatedAt   string
}

// KitchenOrder is one pending order as shown on the kitchen display.
type KitchenOrder struct {
	ID          string
	TableNumber string
	TotalPrice  float64
	Status      string
	CreatedAt   string
	Items       []KitchenOrderItem
}

type KitchenOrderItem struct {
	ProductName     string
	Quantity        int
	UnitPrice       float64
	SelectedOptions []KitchenOrderOption
}

type KitchenOrderOption struct {
	OptionName string
	PriceDelta float64
}
