// Package workspace implementa el lookup de recursos de workspace
// (datasets y apps) a partir de un email de cuenta.
package workspace

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/workhub/internal/cache"
	"github.com/dropDatabas3/workhub/internal/domain/repository"
	dto "github.com/dropDatabas3/workhub/internal/http/dto/workspace"
	"github.com/dropDatabas3/workhub/internal/observability/logger"
)

// TTL corto: la membresía de tenant cambia poco, pero puede cambiar.
const tenantRefTTL = 30 * time.Second

// LookupService resuelve email -> cuenta -> tenant y lista los recursos
// visibles, paginados.
type LookupService struct {
	accounts repository.AccountRepository
	tenants  repository.TenantRepository
	datasets repository.DatasetRepository
	apps     repository.AppRepository
	cache    cache.Client

	// sf evita resolver el mismo email varias veces en paralelo
	sf singleflight.Group
}

// NewLookupService arma el servicio. El cache puede ser nil (sin cache).
func NewLookupService(
	accounts repository.AccountRepository,
	tenants repository.TenantRepository,
	datasets repository.DatasetRepository,
	apps repository.AppRepository,
	c cache.Client,
) *LookupService {
	return &LookupService{
		accounts: accounts,
		tenants:  tenants,
		datasets: datasets,
		apps:     apps,
		cache:    c,
	}
}

// tenantRef es el resultado de resolver el email.
type tenantRef struct {
	AccountID string
	TenantID  string
}

// resolveTenant resuelve email -> (account, tenant).
// Retorna (nil, nil) cuando el email no existe o la cuenta no pertenece a
// ningún tenant: el caller responde página vacía, no error.
func (s *LookupService) resolveTenant(ctx context.Context, email string) (*tenantRef, error) {
	if ref, ok := s.cachedRef(ctx, email); ok {
		return ref, nil
	}

	// El vuelo es compartido entre requests: se desacopla del ctx del
	// primer caller para que su cancelación no tumbe a los demás.
	v, err, _ := s.sf.Do(refCacheKey(email), func() (any, error) {
		return s.resolveTenantSlow(context.WithoutCancel(ctx), email)
	})
	if err != nil {
		return nil, err
	}
	ref, _ := v.(*tenantRef)
	return ref, nil
}

func (s *LookupService) resolveTenantSlow(ctx context.Context, email string) (*tenantRef, error) {
	l := logger.From(ctx).With(logger.Layer("service"), logger.Email(email))

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		l.Info("cuenta no encontrada para el email")
		return nil, nil
	}
	l.Info("cuenta resuelta", logger.AccountID(account.ID))

	join, err := s.tenants.CurrentJoin(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if join == nil {
		// Fallback: cualquier join de la cuenta
		join, err = s.tenants.AnyJoin(ctx, account.ID)
		if err != nil {
			return nil, err
		}
	}
	if join == nil {
		l.Info("la cuenta no pertenece a ningún tenant", logger.AccountID(account.ID))
		return nil, nil
	}
	l.Info("tenant resuelto", logger.AccountID(account.ID), logger.TenantID(join.TenantID))

	ref := &tenantRef{AccountID: account.ID, TenantID: join.TenantID}
	s.storeRef(ctx, email, ref)
	return ref, nil
}

func refCacheKey(email string) string {
	return "tenantref:" + strings.ToLower(email)
}

func (s *LookupService) cachedRef(ctx context.Context, email string) (*tenantRef, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, err := s.cache.Get(ctx, refCacheKey(email))
	if err != nil {
		return nil, false
	}
	parts := strings.SplitN(v, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, false
	}
	return &tenantRef{AccountID: parts[0], TenantID: parts[1]}, true
}

func (s *LookupService) storeRef(ctx context.Context, email string, ref *tenantRef) {
	if s.cache == nil {
		return
	}
	// Best effort: un fallo de cache no afecta la respuesta.
	_ = s.cache.Set(ctx, refCacheKey(email), ref.AccountID+"|"+ref.TenantID, tenantRefTTL)
}

// DatasetsByEmail retorna la página de datasets visibles para la cuenta
// identificada por el email.
func (s *LookupService) DatasetsByEmail(ctx context.Context, email string, page, limit int) (dto.Page[dto.DatasetItem], error) {
	l := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("datasets_by_email"),
	)

	ref, err := s.resolveTenant(ctx, email)
	if err != nil {
		return dto.Page[dto.DatasetItem]{}, err
	}
	if ref == nil {
		return dto.EmptyPage[dto.DatasetItem](page, limit), nil
	}

	offset := (page - 1) * limit
	items, total, err := s.datasets.ListVisible(ctx, ref.TenantID, ref.AccountID, limit, offset)
	if err != nil {
		return dto.Page[dto.DatasetItem]{}, err
	}
	l.Info("datasets listados",
		logger.TenantID(ref.TenantID),
		logger.Page(page),
		logger.Count(len(items)),
		logger.Total(total),
	)

	return dto.Page[dto.DatasetItem]{
		Data:    dto.DatasetsFromModels(items),
		HasMore: offset+limit < total,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// AppsByEmail retorna la página de apps visibles para la cuenta
// identificada por el email.
func (s *LookupService) AppsByEmail(ctx context.Context, email string, page, limit int) (dto.Page[dto.AppItem], error) {
	l := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("apps_by_email"),
	)

	ref, err := s.resolveTenant(ctx, email)
	if err != nil {
		return dto.Page[dto.AppItem]{}, err
	}
	if ref == nil {
		return dto.EmptyPage[dto.AppItem](page, limit), nil
	}

	offset := (page - 1) * limit
	items, total, err := s.apps.ListVisible(ctx, ref.TenantID, ref.AccountID, limit, offset)
	if err != nil {
		return dto.Page[dto.AppItem]{}, err
	}
	l.Info("apps listadas",
		logger.TenantID(ref.TenantID),
		logger.Page(page),
		logger.Count(len(items)),
		logger.Total(total),
	)

	return dto.Page[dto.AppItem]{
		Data:    dto.AppsFromModels(items),
		HasMore: offset+limit < total,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}
