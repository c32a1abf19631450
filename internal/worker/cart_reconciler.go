package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StorefrontFacade exposes the subset of application functionality required by the worker.
type StorefrontFacade interface {
	CartsForSweep(ctx context.Context, limit int) ([]int64, error)
	SweepCart(ctx context.Context, userID int64) ([]string, error)
}

// CartReconciler periodically sweeps persisted carts and drops lines whose
// referenced product no longer resolves. The sweep is best-effort: failures
// are logged and skipped, never escalated.
type CartReconciler struct {
	facade        StorefrontFacade
	sweepInterval time.Duration
	batchSize     int
	workers       int
	logger        *slog.Logger

	jobs   chan int64
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCartReconciler constructs the cart sweep worker pool.
func NewCartReconciler(facade StorefrontFacade, sweepInterval time.Duration, batchSize, workers int, logger *slog.Logger) *CartReconciler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CartReconciler{
		facade:        facade,
		sweepInterval: sweepInterval,
		batchSize:     batchSize,
		workers:       workers,
		logger:        logger,
		jobs:          make(chan int64, batchSize*workers),
	}
}

// Start launches background processing.
func (r *CartReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *CartReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *CartReconciler) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *CartReconciler) fetchAndDispatch(ctx context.Context) {
	userIDs, err := r.facade.CartsForSweep(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch carts for sweep failed", slog.String("error", err.Error()))
		return
	}
	for _, userID := range userIDs {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- userID:
		}
	}
}

func (r *CartReconciler) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case userID, ok := <-r.jobs:
			if !ok {
				return
			}
			r.sweep(ctx, userID)
		}
	}
}

func (r *CartReconciler) sweep(ctx context.Context, userID int64) {
	notices, err := r.facade.SweepCart(ctx, userID)
	if err != nil {
		r.logger.Error("cart sweep failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return
	}
	for _, notice := range notices {
		r.logger.Info("cart line dropped", slog.Int64("user_id", userID), slog.String("notice", notice))
	}
}
