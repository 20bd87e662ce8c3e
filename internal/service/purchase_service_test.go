package service

import (
	"testing"
	"time"

	"go-inventory-admin/internal/ledger"
	"go-inventory-admin/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newPurchaseService(store *fakeStore, cfg PurchaseConfig) PurchaseService {
	return NewPurchaseService(&fakePurchaseRepo{store}, cfg, nil)
}

func purchaseInput(productID uuid.UUID, qty int) *model.Purchase {
	return &model.Purchase{
		ProductID:     productID,
		Quantity:      qty,
		PurchasePrice: decimal.NewFromInt(10),
		Date:          time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		SupplierName:  "Acme Supplies",
	}
}

func TestPurchaseCreateAddsStock(t *testing.T) {
	store := newFakeStore()
	productID := store.addProduct("Rice", 5)
	svc := newPurchaseService(store, PurchaseConfig{})

	require.NoError(t, svc.Create(purchaseInput(productID, 10)))
	require.Equal(t, 15, store.stock(productID))
	require.Len(t, store.purchases, 1)
}

func TestPurchaseCreateRequiresFields(t *testing.T) {
	store := newFakeStore()
	productID := store.addProduct("Rice", 5)
	svc := newPurchaseService(store, PurchaseConfig{})

	missingQty := purchaseInput(productID, 0)
	err := svc.Create(missingQty)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	missingDate := purchaseInput(productID, 3)
	missingDate.Date = time.Time{}
	err = svc.Create(missingDate)
	require.ErrorAs(t, err, &validation)

	// Nothing was written and stock is untouched.
	require.Empty(t, store.purchases)
	require.Equal(t, 5, store.stock(productID))
}

func TestPurchaseCreateUnknownProduct(t *testing.T) {
	store := newFakeStore()
	svc := newPurchaseService(store, PurchaseConfig{})

	err := svc.Create(purchaseInput(uuid.New(), 10))
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, store.purchases)
}

func TestPurchaseUpdateReductionBoundary(t *testing.T) {
	// Reducing a purchase from 10 to 4 removes 6 units from stock. The
	// guard is stock >= 6: stock 8 accepts, stock 5 rejects.
	t.Run("accepts when stock covers the reduction", func(t *testing.T) {
		store := newFakeStore()
		productID := store.addProduct("Rice", 8)
		purchaseID := store.addPurchase(productID, 10)
		svc := newPurchaseService(store, PurchaseConfig{})

		updated, err := svc.Update(purchaseID, purchaseInput(productID, 4))
		require.NoError(t, err)
		require.Equal(t, 4, updated.Quantity)
		require.Equal(t, 2, store.stock(productID))
	})

	t.Run("rejects when stock cannot absorb the reduction", func(t *testing.T) {
		store := newFakeStore()
		productID := store.addProduct("Rice", 5)
		purchaseID := store.addPurchase(productID, 10)
		svc := newPurchaseService(store, PurchaseConfig{})

		_, err := svc.Update(purchaseID, purchaseInput(productID, 4))
		var conflict *ledger.ConflictError
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, 5, conflict.Stock)
		require.Equal(t, -6, conflict.Delta)

		// Rolled back: row and stock are unchanged.
		require.Equal(t, 10, store.purchases[purchaseID].Quantity)
		require.Equal(t, 5, store.stock(productID))
	})
}

func TestPurchaseUpdateLegacyGuardRejectsEveryReduction(t *testing.T) {
	store := newFakeStore()
	productID := store.addProduct("Rice", 8)
	purchaseID := store.addPurchase(productID, 10)
	svc := newPurchaseService(store, PurchaseConfig{LegacyShrinkGuard: true})

	// Stock 8 could absorb the 6-unit reduction, but the historical
	// inequality (stock > delta) still rejects it.
	_, err := svc.Update(purchaseID, purchaseInput(productID, 4))
	var conflict *ledger.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, 8, store.stock(productID))

	// Increases are unaffected by the legacy guard.
	updated, err := svc.Update(purchaseID, purchaseInput(productID, 12))
	require.NoError(t, err)
	require.Equal(t, 12, updated.Quantity)
	require.Equal(t, 10, store.stock(productID))
}

func TestPurchaseUpdateIncrease(t *testing.T) {
	store := newFakeStore()
	productID := store.addProduct("Rice", 8)
	purchaseID := store.addPurchase(productID, 10)
	svc := newPurchaseService(store, PurchaseConfig{})

	_, err := svc.Update(purchaseID, purchaseInput(productID, 15))
	require.NoError(t, err)
	require.Equal(t, 13, store.stock(productID))
}

func TestPurchaseDeleteGuard(t *testing.T) {
	t.Run("rejects and keeps the row when stock is short", func(t *testing.T) {
		store := newFakeStore()
		productID := store.addProduct("Rice", 5)
		purchaseID := store.addPurchase(productID, 6)
		svc := newPurchaseService(store, PurchaseConfig{})

		err := svc.Delete(purchaseID)
		var conflict *ledger.ConflictError
		require.ErrorAs(t, err, &conflict)
		require.Contains(t, store.purchases, purchaseID)
		require.Equal(t, 5, store.stock(productID))
	})

	t.Run("deletes and zeroes stock at the boundary", func(t *testing.T) {
		store := newFakeStore()
		productID := store.addProduct("Rice", 6)
		purchaseID := store.addPurchase(productID, 6)
		svc := newPurchaseService(store, PurchaseConfig{})

		require.NoError(t, svc.Delete(purchaseID))
		require.NotContains(t, store.purchases, purchaseID)
		require.Equal(t, 0, store.stock(productID))
	})
}

func TestPurchaseDeleteUnknown(t *testing.T) {
	store := newFakeStore()
	svc := newPurchaseService(store, PurchaseConfig{})

	require.ErrorIs(t, svc.Delete(uuid.New()), ErrNotFound)
}
