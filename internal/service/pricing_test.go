package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/model"
)

func TestCartTotal(t *testing.T) {
	shirt := &model.Item{ID: "shirt", Title: "Shirt", Price: 2000}
	hat := &model.Item{ID: "hat", Title: "Hat", Price: 1500}

	cart := []*model.CartItem{
		{ID: "c1", ItemID: shirt.ID, Quantity: 2, Item: shirt},
		{ID: "c2", ItemID: hat.ID, Quantity: 1, Item: hat},
	}

	assert.Equal(t, int64(5500), CartTotal(cart))
}

func TestCartTotal_OrderIndependent(t *testing.T) {
	a := &model.Item{ID: "a", Price: 199}
	b := &model.Item{ID: "b", Price: 7301}

	forward := []*model.CartItem{
		{Quantity: 3, Item: a},
		{Quantity: 2, Item: b},
	}
	backward := []*model.CartItem{
		{Quantity: 2, Item: b},
		{Quantity: 3, Item: a},
	}

	assert.Equal(t, CartTotal(forward), CartTotal(backward))
}

func TestCartTotal_SkipsDeletedItems(t *testing.T) {
	cart := []*model.CartItem{
		{Quantity: 5, Item: nil},
		{Quantity: 1, Item: &model.Item{Price: 100}},
	}

	assert.Equal(t, int64(100), CartTotal(cart))
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), CartTotal(nil))
}
