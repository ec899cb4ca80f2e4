package form

import (
	"fmt"
	"strconv"
	"sync"

	"repair_tracker/internal/domain/entities"
)

// OrderFields holds the raw values typed into the order form.
type OrderFields struct {
	Brand           string               `json:"brand" validate:"required"`
	Model           string               `json:"model" validate:"required"`
	RepairType      string               `json:"repairType" validate:"required"`
	Cost            string               `json:"cost" validate:"required"`
	CustomerName    string               `json:"customerName" validate:"required"`
	CustomerPhone   string               `json:"customerPhone" validate:"required,number,max=10"`
	CustomerAddress string               `json:"customerAddress" validate:"required"`
	Status          entities.OrderStatus `json:"status" validate:"required"`
}

func defaultOrderFields() OrderFields {
	return OrderFields{Status: entities.OrderStatusEnProceso}
}

// OrderFormState is a consistent copy of the form for rendering.
type OrderFormState struct {
	Fields  OrderFields     `json:"fields"`
	Editing *entities.Order `json:"editing,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// OrderForm is the create/edit view model for repair orders.
type OrderForm struct {
	mu      sync.Mutex
	fields  OrderFields
	editing *entities.Order
	err     string

	newOrderNumber func() string
}

func NewOrderForm() *OrderForm {
	return &OrderForm{fields: defaultOrderFields(), newOrderNumber: newOrderNumber}
}

// BeginEdit seeds every field from o and enters edit mode.
func (f *OrderForm) BeginEdit(o entities.Order) {
	editing := o
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields = OrderFields{
		Brand:           o.Brand,
		Model:           o.Model,
		RepairType:      o.RepairType,
		Cost:            strconv.FormatFloat(o.Cost, 'f', -1, 64),
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Status:          o.Status,
	}
	f.editing = &editing
	f.err = ""
}

// Reset restores the defaults, clears the error and leaves edit mode.
func (f *OrderForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = defaultOrderFields()
	f.editing = nil
	f.err = ""
}

func (f *OrderForm) State() OrderFormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := OrderFormState{Fields: f.fields, Error: f.err}
	if f.editing != nil {
		e := *f.editing
		st.Editing = &e
	}
	return st
}

// EditingID returns the id of the order being edited, or "" when creating.
func (f *OrderForm) EditingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editing == nil {
		return ""
	}
	return f.editing.ID
}

func (f *OrderForm) SetError(msg string) {
	f.mu.Lock()
	f.err = msg
	f.mu.Unlock()
}

func (f *OrderForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *OrderForm) SetBrand(v string)           { f.set(func(o *OrderFields) { o.Brand = v }) }
func (f *OrderForm) SetModel(v string)           { f.set(func(o *OrderFields) { o.Model = v }) }
func (f *OrderForm) SetRepairType(v string)      { f.set(func(o *OrderFields) { o.RepairType = v }) }
func (f *OrderForm) SetCustomerName(v string)    { f.set(func(o *OrderFields) { o.CustomerName = v }) }
func (f *OrderForm) SetCustomerAddress(v string) { f.set(func(o *OrderFields) { o.CustomerAddress = v }) }

// SetCustomerPhone keeps the previous value unless v is at most ten digits.
func (f *OrderForm) SetCustomerPhone(v string) bool {
	if !acceptPhone(v) {
		return false
	}
	f.set(func(o *OrderFields) { o.CustomerPhone = v })
	return true
}

// SetCost keeps the previous value unless v is empty or a non-negative number.
func (f *OrderForm) SetCost(v string) bool {
	if !acceptCost(v) {
		return false
	}
	f.set(func(o *OrderFields) { o.Cost = v })
	return true
}

func (f *OrderForm) SetStatus(s entities.OrderStatus) bool {
	if !s.Valid() {
		return false
	}
	f.set(func(o *OrderFields) { o.Status = s })
	return true
}

// Apply pushes every field of in through its setter. Rejected inputs leave
// the previous value in place and are reported together.
func (f *OrderForm) Apply(in OrderFields) error {
	f.SetBrand(in.Brand)
	f.SetModel(in.Model)
	f.SetRepairType(in.RepairType)
	f.SetCustomerName(in.CustomerName)
	f.SetCustomerAddress(in.CustomerAddress)

	var rejected []string
	if !f.SetCost(in.Cost) {
		rejected = append(rejected, "cost")
	}
	if !f.SetCustomerPhone(in.CustomerPhone) {
		rejected = append(rejected, "customerPhone")
	}
	if in.Status != "" && !f.SetStatus(in.Status) {
		rejected = append(rejected, "status")
	}
	if len(rejected) > 0 {
		return fmt.Errorf("%w: %v", ErrRejectedInput, rejected)
	}
	return nil
}

// Submit validates the required fields and builds the payload. A new order
// gets a fresh order number; an edited order keeps its id and order number.
func (f *OrderForm) Submit() (entities.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := validate.Struct(f.fields); err != nil {
		return entities.Order{}, validationError(err)
	}
	cost, err := strconv.ParseFloat(f.fields.Cost, 64)
	if err != nil || cost < 0 {
		return entities.Order{}, fmt.Errorf("%w: Cost", ErrIncompleteForm)
	}

	o := entities.Order{
		Brand:           f.fields.Brand,
		Model:           f.fields.Model,
		RepairType:      f.fields.RepairType,
		Cost:            cost,
		CustomerName:    f.fields.CustomerName,
		CustomerPhone:   f.fields.CustomerPhone,
		CustomerAddress: f.fields.CustomerAddress,
		Status:          f.fields.Status,
	}
	if f.editing != nil {
		o.ID = f.editing.ID
		o.OrderNumber = f.editing.OrderNumber
	} else {
		o.OrderNumber = f.newOrderNumber()
	}
	return o, nil
}

func (f *OrderForm) set(apply func(*OrderFields)) {
	f.mu.Lock()
	apply(&f.fields)
	f.mu.Unlock()
}
