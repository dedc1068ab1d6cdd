// Package middlewares contiene los middlewares HTTP transversales del
// servicio (request id, logging, recover, CORS, rate limit, auth).
package middlewares

import "net/http"

// Middleware es una función que envuelve un http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain aplica los middlewares en orden inverso, de modo que el primero
// de la lista es el más externo en la ejecución.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
