package screens

import (
	"context"
	"fmt"
	"time"

	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/models"
)

const (
	stateStock       = "stock"
	stateOutstanding = "outstanding"
	stateCart        = "cart"
)

// StateStore keeps per-session screen state in Redis: expanded rows and the cart.
type StateStore struct {
	ttl time.Duration
}

func NewStateStore(ttl time.Duration) *StateStore {
	return &StateStore{ttl: ttl}
}

func stateKey(sessionId string, screen string) string {
	return fmt.Sprintf("Screen:%s:%s", sessionId, screen)
}

func (s *StateStore) StockExpansion(ctx context.Context, sessionId string) (*models.ExpansionState[models.StockRowKey], error) {
	state := models.NewExpansionState[models.StockRowKey]()
	if _, err := config.GetRedisObject(ctx, stateKey(sessionId, stateStock), state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *StateStore) SaveStockExpansion(ctx context.Context, sessionId string, state *models.ExpansionState[models.StockRowKey]) error {
	return config.SetRedisObject(ctx, stateKey(sessionId, stateStock), state, s.ttl)
}

func (s *StateStore) OutstandingExpansion(ctx context.Context, sessionId string) (*models.ExpansionState[models.CustomerRowKey], error) {
	state := models.NewExpansionState[models.CustomerRowKey]()
	if _, err := config.GetRedisObject(ctx, stateKey(sessionId, stateOutstanding), state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *StateStore) SaveOutstandingExpansion(ctx context.Context, sessionId string, state *models.ExpansionState[models.CustomerRowKey]) error {
	return config.SetRedisObject(ctx, stateKey(sessionId, stateOutstanding), state, s.ttl)
}

// Cart returns an empty cart when none is stored.
func (s *StateStore) Cart(ctx context.Context, sessionId string) (*models.Cart, error) {
	var cart models.Cart
	if _, err := config.GetRedisObject(ctx, stateKey(sessionId, stateCart), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *StateStore) SaveCart(ctx context.Context, sessionId string, cart *models.Cart) error {
	return config.SetRedisObject(ctx, stateKey(sessionId, stateCart), cart, s.ttl)
}

func (s *StateStore) ResetCart(ctx context.Context, sessionId string) error {
	return config.RemoveRedisKey(ctx, stateKey(sessionId, stateCart))
}

// Clear drops every screen's state for the session.
func (s *StateStore) Clear(ctx context.Context, sessionId string) error {
	return config.RemoveRedisKey(ctx,
		stateKey(sessionId, stateStock),
		stateKey(sessionId, stateOutstanding),
		stateKey(sessionId, stateCart),
	)
}
