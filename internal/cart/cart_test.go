// internal/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/terrazul/terrazul-backend/internal/models"
)

func testProduct() *models.Product {
	return &models.Product{
		ID:          "kantutani-bolivia",
		Name:        "Kantutani, Bolivia",
		PriceNumber: 14000,
		Prices: models.PriceMap{
			"250g": 14000,
			"1kg":  42000,
		},
		Img: "/Kantutani.webp",
	}
}

func packProduct() *models.Product {
	// No weight variants, sells at the flat price
	return &models.Product{
		ID:          "pack-tres-origenes",
		Name:        "Pack Tres Orígenes",
		PriceNumber: 32000,
	}
}

func TestLineItemID(t *testing.T) {
	assert.Equal(t, "kantutani-bolivia-250g-Molido fino", LineItemID("kantutani-bolivia", "250g", "Molido fino"))
	assert.Equal(t, "kantutani-bolivia-default-default", LineItemID("kantutani-bolivia", "", ""))
	assert.Equal(t, "kantutani-bolivia-1kg-default", LineItemID("kantutani-bolivia", "1kg", ""))
	assert.Equal(t, "kantutani-bolivia-default-Molido medio", LineItemID("kantutani-bolivia", "", "Molido medio"))
}

func TestNewLineItemSnapshotsWeightPrice(t *testing.T) {
	product := testProduct()

	item := NewLineItem(product, 1, "1kg", "Molido fino")
	assert.Equal(t, 42000, item.PriceNumber)

	item = NewLineItem(product, 1, "250g", "Molido fino")
	assert.Equal(t, 14000, item.PriceNumber)

	// Unknown weight falls back to the base price
	item = NewLineItem(product, 1, "500g", "Molido fino")
	assert.Equal(t, 14000, item.PriceNumber)

	// No weight selection falls back too
	item = NewLineItem(packProduct(), 1, "", "")
	assert.Equal(t, 32000, item.PriceNumber)
}

func TestNewLineItemClampsQuantity(t *testing.T) {
	item := NewLineItem(testProduct(), 0, "250g", "")
	assert.Equal(t, 1, item.Quantity)

	item = NewLineItem(testProduct(), -3, "250g", "")
	assert.Equal(t, 1, item.Quantity)
}

type CartSuite struct {
	suite.Suite
	cart *Cart
}

func (s *CartSuite) SetupTest() {
	s.cart = New()
}

func (s *CartSuite) TestAddItemMergesSameSelection() {
	product := testProduct()

	s.cart.AddItem(product, 2, "250g", "Molido fino")
	s.cart.AddItem(product, 3, "250g", "Molido fino")
	s.cart.AddItem(product, 1, "1kg", "Molido fino")

	items := s.cart.Items()
	s.Require().Len(items, 2)

	s.Equal(5, items[0].Quantity)
	s.Equal(14000, items[0].PriceNumber)
	s.Equal("250g", items[0].SelectedWeight)

	s.Equal(1, items[1].Quantity)
	s.Equal(42000, items[1].PriceNumber)
	s.Equal("1kg", items[1].SelectedWeight)

	s.Equal(5*14000+42000, s.cart.Total())
	s.Equal(6, s.cart.Count())
	s.Equal(2, s.cart.Len())
}

func (s *CartSuite) TestAddItemDistinctGrindsAreDistinctItems() {
	product := testProduct()

	s.cart.AddItem(product, 1, "250g", "Molido fino")
	s.cart.AddItem(product, 1, "250g", "Molido grueso")

	s.Equal(2, s.cart.Len())
}

func (s *CartSuite) TestMergeKeepsSnapshotPrice() {
	product := testProduct()
	s.cart.AddItem(product, 1, "250g", "Molido fino")

	// Catalog price change after the item entered the cart
	product.Prices["250g"] = 15500
	product.PriceNumber = 15500

	merged := s.cart.AddItem(product, 1, "250g", "Molido fino")

	s.Equal(2, merged.Quantity)
	s.Equal(14000, merged.PriceNumber)
	s.Equal(28000, s.cart.Total())
}

func (s *CartSuite) TestRemoveItem() {
	product := testProduct()
	s.cart.AddItem(product, 1, "250g", "Molido fino")

	s.cart.RemoveItem(LineItemID(product.ID, "250g", "Molido fino"))
	s.Equal(0, s.cart.Len())

	// Absent id is a silent no-op
	s.cart.RemoveItem("nope-default-default")
	s.Equal(0, s.cart.Len())
}

func (s *CartSuite) TestUpdateQuantity() {
	product := testProduct()
	s.cart.AddItem(product, 2, "250g", "Molido fino")
	cartID := LineItemID(product.ID, "250g", "Molido fino")

	s.cart.UpdateQuantity(cartID, 7)
	s.Equal(7, s.cart.Items()[0].Quantity)

	// Quantities below 1 are ignored, not deleted or clamped
	s.cart.UpdateQuantity(cartID, 0)
	s.Equal(7, s.cart.Items()[0].Quantity)

	s.cart.UpdateQuantity(cartID, -5)
	s.Equal(7, s.cart.Items()[0].Quantity)

	// Unknown id is ignored
	s.cart.UpdateQuantity("nope-default-default", 3)
	s.Equal(1, s.cart.Len())
}

func (s *CartSuite) TestClear() {
	s.cart.AddItem(testProduct(), 2, "250g", "Molido fino")
	s.cart.AddItem(packProduct(), 1, "", "")

	s.cart.Clear()

	s.Equal(0, s.cart.Len())
	s.Equal(0, s.cart.Total())
	s.Equal(0, s.cart.Count())
}

func (s *CartSuite) TestInsertionOrderPreserved() {
	s.cart.AddItem(testProduct(), 1, "250g", "Molido fino")
	s.cart.AddItem(packProduct(), 1, "", "")
	s.cart.AddItem(testProduct(), 1, "1kg", "Molido fino")

	// Merging into the first item must not move it
	s.cart.AddItem(testProduct(), 1, "250g", "Molido fino")

	items := s.cart.Items()
	s.Require().Len(items, 3)
	s.Equal("kantutani-bolivia-250g-Molido fino", items[0].CartID)
	s.Equal("pack-tres-origenes-default-default", items[1].CartID)
	s.Equal("kantutani-bolivia-1kg-Molido fino", items[2].CartID)
}

func (s *CartSuite) TestEmptyCartTotals() {
	s.Equal(0, s.cart.Total())
	s.Equal(0, s.cart.Count())
	s.Equal(0, s.cart.Len())
	s.Empty(s.cart.Items())
}

func TestCartSuite(t *testing.T) {
	suite.Run(t, new(CartSuite))
}
