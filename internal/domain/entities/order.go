package entities

// OrderStatus represents the repair progress of an order.
//
// Values travel verbatim on the Record Store wire format, so they keep the
// shop's Spanish labels.
type OrderStatus string

const (
	OrderStatusEnProceso  OrderStatus = "En proceso"
	OrderStatusReparado   OrderStatus = "Reparado"
	OrderStatusNoReparado OrderStatus = "No reparado"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusEnProceso, OrderStatusReparado, OrderStatusNoReparado:
		return true
	}
	return false
}

// Order is a repair order as stored by the Record Store.
//
// Identity:
//   - ID is assigned by the Record Store and is empty until the first save.
//   - OrderNumber is generated by the client when the order is created and
//     never changes afterwards. Customers use it to look up the status.
type Order struct {
	ID              string      `json:"_id,omitempty"`
	OrderNumber     string      `json:"orderNumber"`
	Brand           string      `json:"brand"`
	Model           string      `json:"model"`
	RepairType      string      `json:"repairType"`
	Cost            float64     `json:"cost"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Status          OrderStatus `json:"status"`
}

// Key returns the cache identity of the order.
func (o Order) Key() string { return o.ID }

// Saved reports whether the Record Store has assigned an id.
func (o Order) Saved() bool { return o.ID != "" }
