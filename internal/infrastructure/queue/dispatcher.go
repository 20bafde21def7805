package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/api/metrics"
	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes stock movements to a fixed set of workers using
// consistent hashing on the product ID, guaranteeing per-product ordering.
// The direct HTTP adjust path stays unsynchronized last-writer-wins; feeds
// and bulk imports go through here so movements for one product never race
// each other.
type Dispatcher struct {
	workers []chan ports.AdjustStockInput
	service ports.InventoryService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.InventoryService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AdjustStockInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AdjustStockInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a movement to the worker responsible for its product.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(movement ports.AdjustStockInput) {
	idx := d.shardIndex(movement.ProductID)
	d.workers[idx] <- movement
	metrics.MovementQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple movements preserving per-product ordering.
func (d *Dispatcher) EnqueueBatch(movements []ports.AdjustStockInput) {
	for _, m := range movements {
		d.Enqueue(m)
	}
}

// shardIndex maps a product ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32()) % len(d.workers)
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativeStock):
		return "negative_stock"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	default:
		return "persistence"
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AdjustStockInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case movement, ok := <-ch:
			if !ok {
				return
			}
			if _, err := d.service.AdjustStock(ctx, movement); err != nil {
				metrics.StockMovementErrorsTotal.WithLabelValues(reason(err)).Inc()
				d.log.Error().Err(err).
					Str("product_id", movement.ProductID).
					Int("worker_id", id).
					Msg("movement processing failed")
			}
			metrics.MovementQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
