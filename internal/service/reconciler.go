package service

import (
	"context"
	"sync"
	"time"

	"postl-admin-backend/internal/logger"
	"postl-admin-backend/internal/metrics"
	"postl-admin-backend/internal/repository"

	"github.com/google/uuid"
)

// Reconciler persists expiry corrections found during a list fetch.
// Writes are detached from the caller: a failure is logged and the same
// correction is found again on the next fetch. Each write is conditional on the
// row still being active and expired at the fetch time, so a correction that
// lands after an edit extended the contract or unlocked the tenant changes nothing.
type Reconciler struct {
	repo    repository.TenantRepositoryInterface
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewReconciler creates a reconciler writing through repo
func NewReconciler(repo repository.TenantRepositoryInterface, timeout time.Duration) *Reconciler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Reconciler{repo: repo, timeout: timeout}
}

// Persist starts one correction write per id and returns immediately.
// now is the instant the corrections were derived at.
func (r *Reconciler) Persist(ctx context.Context, ids []uuid.UUID, now time.Time) {
	if len(ids) == 0 {
		return
	}
	base := context.WithoutCancel(ctx)
	log := logger.WithContext(base)
	log.WithField("count", len(ids)).Info("Deactivating expired tenants")

	for _, id := range ids {
		metrics.ReconcileCorrections.Inc()
		r.wg.Add(1)
		go func(id uuid.UUID) {
			defer r.wg.Done()

			wctx, cancel := context.WithTimeout(base, r.timeout)
			defer cancel()

			changed, err := r.repo.Deactivate(wctx, id, now)
			if err != nil {
				metrics.ReconcileFailures.Inc()
				log.WithField("tenant_id", id.String()).WithError(err).Warn("Failed to persist expired tenant correction")
				return
			}
			if !changed {
				log.WithField("tenant_id", id.String()).Debug("Expiry correction skipped; tenant changed since fetch")
			}
		}(id)
	}
}

// Wait blocks until every started correction has finished
func (r *Reconciler) Wait() {
	r.wg.Wait()
}
