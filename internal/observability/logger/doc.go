// Package logger provee un wrapper fino sobre zap con:
//
//   - Singleton global inicializado una sola vez (Init / L)
//   - Propagación por contexto (ToContext / From)
//   - Campos tipados estándar para HTTP y negocio (RequestID, TenantID, ...)
//
// Uso típico en un controller:
//
//	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Datasets.Get"))
//	log.Info("lookup completed", logger.Total(total))
package logger
