package interfaces

import "errors"

// ErrRecordExists is returned by repositories when a record with the same id
// is already stored.
var ErrRecordExists = errors.New("record already exists")

// ErrOrderNumberExists is returned by IOrderRepository.Create when another
// order already holds the order number.
var ErrOrderNumberExists = errors.New("order number already exists")
