// Package workspace define los contratos JSON de los endpoints de lookup
// por email (datasets y apps de un workspace).
package workspace

// Page es el envelope estándar de respuestas paginadas.
type Page[T any] struct {
	Data    []T  `json:"data"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
}

// EmptyPage arma la página vacía que se devuelve cuando el email no
// resuelve a una cuenta o la cuenta no pertenece a ningún tenant.
func EmptyPage[T any](page, limit int) Page[T] {
	return Page[T]{
		Data:    []T{},
		HasMore: false,
		Total:   0,
		Page:    page,
		Limit:   limit,
	}
}
