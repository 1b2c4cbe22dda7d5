package services

import (
	"testing"

	"github.com/Naveendeworks/emergent/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCategory(t *testing.T, board []KitchenCategoryGroup, name string) KitchenCategoryGroup {
	t.Helper()
	for _, g := range board {
		if g.CategoryName == name {
			return g
		}
	}
	t.Fatalf("category %q not on the board", name)
	return KitchenCategoryGroup{}
}

func TestKitchenBoardGroupsByItem(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Create(orderReq("Sam", OrderItemIn{Name: "Tacos", Quantity: 2}))
	require.NoError(t, err)
	_, err = svc.Create(orderReq("Alex",
		OrderItemIn{Name: "Tacos", Quantity: 3},
		OrderItemIn{Name: "Coffee", Quantity: 1},
	))
	require.NoError(t, err)

	board, err := svc.KitchenBoard()
	require.NoError(t, err)
	require.Len(t, board, 2)

	mains := findCategory(t, board, "Mains")
	require.Len(t, mains.Items, 1)
	assert.Equal(t, 1, mains.TotalItems)

	tacos := mains.Items[0]
	assert.Equal(t, "Tacos", tacos.ItemName)
	assert.Equal(t, 5, tacos.TotalQuantity)
	require.Len(t, tacos.Orders, 2)
	for _, ref := range tacos.Orders {
		assert.Equal(t, entity.CookingNotStarted, ref.CookingStatus)
		assert.NotZero(t, ref.OrderNumber)
	}

	beverages := findCategory(t, board, "Beverages")
	require.Len(t, beverages.Items, 1)
	assert.Equal(t, "Coffee", beverages.Items[0].ItemName)

	// completing an order removes its lines from the board
	_, err = svc.Complete(first.ID)
	require.NoError(t, err)

	board, err = svc.KitchenBoard()
	require.NoError(t, err)
	mains = findCategory(t, board, "Mains")
	assert.Equal(t, 3, mains.Items[0].TotalQuantity)
	assert.Len(t, mains.Items[0].Orders, 1)
}

func TestKitchenBoardDeterministicOrder(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(orderReq("Sam",
		OrderItemIn{Name: "Burger", Quantity: 1},
		OrderItemIn{Name: "Coffee", Quantity: 1},
	))
	require.NoError(t, err)
	_, err = svc.Create(orderReq("Alex", OrderItemIn{Name: "Tacos", Quantity: 1}))
	require.NoError(t, err)

	first, err := svc.KitchenBoard()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := svc.KitchenBoard()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestKitchenBoardEmpty(t *testing.T) {
	svc := newTestService(t)

	board, err := svc.KitchenBoard()
	require.NoError(t, err)
	assert.Empty(t, board)
}
