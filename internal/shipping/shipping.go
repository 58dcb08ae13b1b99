package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkorsun/storefront/internal/config"
	"github.com/mkorsun/storefront/internal/domain"
	"github.com/mkorsun/storefront/pkg/clients"
)

const (
	maxRetries       = 3
	retryInterval    = time.Second * 1
	maxPending       = 1000
	dispatchInterval = time.Second * 5
)

// Manifest is the payload posted to the logistics endpoint for each
// completed order.
type Manifest struct {
	StoreID string `json:"storeId"`
	Key1    string `json:"key1"`
	Key2    string `json:"key2"`
	OrderID int    `json:"orderId"`
	UserID  int    `json:"userId"`
	Total   int    `json:"total"`
	Items   []Item `json:"items"`
}

type Item struct {
	ProductID int `json:"productId"`
	Qty       int `json:"qty"`
}

// Service collects completed orders and hands them to the logistics
// system in the background. Notify never blocks the caller; when no
// endpoint is configured each shipment is only logged, which is the
// stub behavior the integration started with.
type Service struct {
	endpoint string
	storeID  string
	key1     string
	key2     string

	client     clients.HTTPClientI
	workerPool WorkerPoolI
	interval   time.Duration

	mu      sync.Mutex
	pending []domain.Order
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		endpoint:   cfg.LogisticAddress,
		storeID:    cfg.LogisticStoreID,
		key1:       cfg.LogisticKey1,
		key2:       cfg.LogisticKey2,
		client:     client,
		workerPool: NewWorkerPool(10),
		interval:   dispatchInterval,
	}
}

// Notify queues the order for shipment. Overflow is dropped with a
// warning rather than ever stalling checkout.
func (s *Service) Notify(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) >= maxPending {
		zap.L().Warn("shipment queue full, dropping order", zap.Int("orderID", order.ID))
		return
	}
	s.pending = append(s.pending, order)
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("shipping dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping shipping dispatcher")
			return
		case <-ticker.C:
			s.dispatch(ctx)
		}
	}
}

func (s *Service) dispatch(ctx context.Context) {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	var g errgroup.Group
	for _, order := range batch {
		order := order
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				return s.ship(ctx, order)
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching shipments", zap.Error(err))
	}
}

func (s *Service) ship(ctx context.Context, order domain.Order) error {
	if s.endpoint == "" {
		zap.L().Info("shipping with store ID (stub)",
			zap.String("storeID", s.storeID),
			zap.Int("orderID", order.ID))
		return nil
	}

	items := make([]Item, len(order.Items))
	for i, line := range order.Items {
		items[i] = Item{ProductID: line.ProductID, Qty: line.Qty}
	}
	body, err := json.Marshal(Manifest{
		StoreID: s.storeID,
		Key1:    s.key1,
		Key2:    s.key2,
		OrderID: order.ID,
		UserID:  order.UserID,
		Total:   order.Total,
		Items:   items,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal shipment manifest: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	url := s.endpoint + "/api/shipments"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, _, err := s.client.Post(url, body, headers)
		if err == nil && statusCode < http.StatusInternalServerError {
			if statusCode >= http.StatusBadRequest {
				return fmt.Errorf("logistics rejected order %d with status %d", order.ID, statusCode)
			}
			zap.L().Info("order shipped", zap.Int("orderID", order.ID))
			return nil
		}

		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to ship order %d after %d retries: %w", order.ID, maxRetries, err)
		}
		return fmt.Errorf("failed to ship order %d after %d retries: status %d", order.ID, maxRetries, statusCode)
	}
	return nil
}
