package repository

import "errors"

// ErrNotFound indica que el recurso solicitado no existe.
// Los repos de lookup prefieren (nil, nil) para ausencias esperadas;
// este sentinel queda para los casos donde la ausencia sí es error.
var ErrNotFound = errors.New("not found")

// IsNotFound verifica si el error es ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
