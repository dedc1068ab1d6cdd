// Package workspace expone los endpoints de lookup de recursos de
// workspace por email.
package workspace

import (
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/workhub/internal/http/errors"
	"github.com/dropDatabas3/workhub/internal/http/helpers"
	wssvc "github.com/dropDatabas3/workhub/internal/http/services/workspace"
	"github.com/dropDatabas3/workhub/internal/observability/logger"
)

// LookupController maneja GET /workspaces/email/datasets y
// GET /workspaces/email/apps.
type LookupController struct {
	svc *wssvc.LookupService
}

func NewLookupController(svc *wssvc.LookupService) *LookupController {
	return &LookupController{svc: svc}
}

// Datasets responde la página de datasets visibles para el email dado.
func (c *LookupController) Datasets(w http.ResponseWriter, r *http.Request) {
	l := logger.From(r.Context()).With(
		logger.Layer("controller"),
		logger.Op("email_datasets"),
	)

	email, page, limit, appErr := lookupParams(r)
	if appErr != nil {
		httperrors.WriteError(w, appErr)
		return
	}

	result, err := c.svc.DatasetsByEmail(r.Context(), email, page, limit)
	if err != nil {
		l.Error("lookup de datasets falló", logger.Err(err))
		httperrors.WriteError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// Apps responde la página de apps visibles para el email dado.
func (c *LookupController) Apps(w http.ResponseWriter, r *http.Request) {
	l := logger.From(r.Context()).With(
		logger.Layer("controller"),
		logger.Op("email_apps"),
	)

	email, page, limit, appErr := lookupParams(r)
	if appErr != nil {
		httperrors.WriteError(w, appErr)
		return
	}

	result, err := c.svc.AppsByEmail(r.Context(), email, page, limit)
	if err != nil {
		l.Error("lookup de apps falló", logger.Err(err))
		httperrors.WriteError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// lookupParams valida email y extrae la paginación.
func lookupParams(r *http.Request) (email string, page, limit int, appErr *httperrors.AppError) {
	email = strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		return "", 0, 0, httperrors.ErrMissingEmail
	}
	page, limit = helpers.Pagination(r)
	return email, page, limit, nil
}
