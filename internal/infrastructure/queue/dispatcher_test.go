package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

type recordingService struct {
	mu    sync.Mutex
	calls []ports.AdjustStockInput
	done  chan struct{}
	want  int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) AdjustStock(_ context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, in)
	if len(s.calls) == s.want {
		close(s.done)
	}
	return &domain.Product{ID: in.ProductID}, nil
}

func (s *recordingService) ListProducts(_ context.Context) ([]domain.Product, error) { return nil, nil }
func (s *recordingService) CreateProduct(_ context.Context, _ ports.CreateProductInput) (*domain.Product, error) {
	return nil, nil
}
func (s *recordingService) UpdateProduct(_ context.Context, _ string, _ ports.UpdateProductInput) (*domain.Product, error) {
	return nil, nil
}
func (s *recordingService) DeleteProduct(_ context.Context, _ string) error { return nil }
func (s *recordingService) Alerts(_ context.Context) ([]domain.StockAlert, error) {
	return nil, nil
}
func (s *recordingService) History(_ context.Context, _ string) ([]domain.StockHistory, error) {
	return nil, nil
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for movements to be processed")
	}
}

func TestDispatcher_ProcessesEnqueuedMovements(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.EnqueueBatch([]ports.AdjustStockInput{
		{ProductID: "p1", QuantityChange: 1, MovementType: domain.MovementIn},
		{ProductID: "p2", QuantityChange: 2, MovementType: domain.MovementIn},
		{ProductID: "p3", QuantityChange: 3, MovementType: domain.MovementIn},
	})

	waitDone(t, svc.done)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.calls) != 3 {
		t.Fatalf("expected 3 processed movements, got %d", len(svc.calls))
	}
}

func TestDispatcher_SameProductStaysOrdered(t *testing.T) {
	const n = 20
	svc := newRecordingService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(ports.AdjustStockInput{
			ProductID:      "p1",
			QuantityChange: i,
			MovementType:   domain.MovementIn,
		})
	}

	waitDone(t, svc.done)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, call := range svc.calls {
		if call.QuantityChange != i {
			t.Fatalf("movement %d processed out of order: got change %d", i, call.QuantityChange)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingService(1), zerolog.Nop())

	first := d.shardIndex("product-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("product-42") != first {
			t.Fatalf("shard index must be stable for one product")
		}
	}
}
