package request

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type NavigateRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// StatusLookupRequest is the public order status form. An empty order number
// is accepted and answered with "not found".
type StatusLookupRequest struct {
	OrderNumber string `json:"orderNumber"`
}
