package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	global *zap.Logger
)

// Init construye el logger global a partir de la configuración.
// La primera llamada gana; las siguientes no lo reemplazan.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = build(cfg)
	}
}

// L entrega el logger global. Si nadie llamó a Init todavía, arma uno
// de desarrollo en nivel info para no perder logs tempranos.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = build(Config{Env: "dev", Level: "info"})
	}
	return global
}

// Named deriva un logger con nombre de componente.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// With deriva un logger con campos fijos.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync descarga los buffers pendientes; pensado para defer en main.
func Sync() error {
	mu.Lock()
	l := global
	mu.Unlock()
	if l == nil {
		return nil
	}
	return l.Sync()
}
