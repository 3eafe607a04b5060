package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func TestPurchaseOrder_IsEditable(t *testing.T) {
	casos := []struct {
		status   string
		editable bool
	}{
		{entity.POStatusDraft, true},
		{entity.POStatusOpen, true},
		{entity.POStatusReceived, false},
		{entity.POStatusCancelled, false},
	}
	for _, c := range casos {
		po := &entity.PurchaseOrder{Status: c.status}
		assert.Equal(t, c.editable, po.IsEditable(), "estado %s", c.status)
	}
}

func TestPurchaseOrder_IsClosed(t *testing.T) {
	assert.False(t, (&entity.PurchaseOrder{Status: entity.POStatusOpen}).IsClosed())
	assert.False(t, (&entity.PurchaseOrder{Status: entity.POStatusDraft}).IsClosed())
	assert.True(t, (&entity.PurchaseOrder{Status: entity.POStatusReceived}).IsClosed())
	assert.True(t, (&entity.PurchaseOrder{Status: entity.POStatusCancelled}).IsClosed())
}

func TestPurchaseOrderLine_Remaining(t *testing.T) {
	line := &entity.PurchaseOrderLine{
		QtyOrdered:  decimal.NewFromInt(10),
		QtyReceived: decimal.NewFromInt(4),
	}
	assert.True(t, line.Remaining().Equal(decimal.NewFromInt(6)))
	assert.False(t, line.IsComplete())
}

func TestPurchaseOrderLine_IsComplete(t *testing.T) {
	line := &entity.PurchaseOrderLine{
		QtyOrdered:  decimal.NewFromInt(10),
		QtyReceived: decimal.NewFromInt(10),
	}
	assert.True(t, line.IsComplete())
	assert.True(t, line.Remaining().IsZero())
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleOperator))
	assert.True(t, entity.ValidRole(entity.RoleViewer))
	assert.False(t, entity.ValidRole("bodeguero"))
	assert.False(t, entity.ValidRole(""))
}
