package search

import (
	"strings"

	"repair_tracker/internal/domain/entities"
)

// Field extracts one searchable attribute from a record.
type Field[T any] func(T) string

// Filter returns, in source order, every record where query is a
// case-insensitive substring of at least one of fields. An empty query
// returns a copy of the full set. records is never modified.
func Filter[T any](records []T, query string, fields ...Field[T]) []T {
	out := make([]T, 0, len(records))
	if query == "" {
		return append(out, records...)
	}

	needle := strings.ToLower(query)
	for _, r := range records {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(r)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

var orderFields = []Field[entities.Order]{
	func(o entities.Order) string { return o.CustomerName },
	func(o entities.Order) string { return o.Brand },
	func(o entities.Order) string { return o.Model },
}

var appointmentFields = []Field[entities.Appointment]{
	func(a entities.Appointment) string { return a.CustomerName },
	func(a entities.Appointment) string { return a.Service },
}

// Orders searches customer name, brand and model.
func Orders(records []entities.Order, query string) []entities.Order {
	return Filter(records, query, orderFields...)
}

// Appointments searches customer name and service.
func Appointments(records []entities.Appointment, query string) []entities.Appointment {
	return Filter(records, query, appointmentFields...)
}
