// internal/cart/cart.go

// Package cart implements the storefront cart state model: line-item
// identity, merge rules, quantity mutation and derived totals. The engine is
// pure and synchronous; persistence lives behind the Store interface.
package cart

import (
	"fmt"

	"github.com/terrazul/terrazul-backend/internal/models"
)

const defaultOption = "default"

// LineItem is one cart row: a shallow snapshot of a product taken at
// add-time plus the user's weight/grind selection and a quantity. Later
// catalog edits never retroactively change items already in the cart.
type LineItem struct {
	CartID              string         `json:"cart_id"`
	ProductID           string         `json:"product_id"`
	Name                string         `json:"name"`
	Description         string         `json:"description,omitempty"`
	PriceNumber         int            `json:"price_number"`
	Prices              map[string]int `json:"prices,omitempty"`
	Img                 string         `json:"img,omitempty"`
	TastingNotes        []string       `json:"tasting_notes,omitempty"`
	Acidity             *int           `json:"acidity,omitempty"`
	Intensity           *int           `json:"intensity,omitempty"`
	Bitterness          *int           `json:"bitterness,omitempty"`
	TastingProfileImage string         `json:"tasting_profile_image,omitempty"`
	SelectedWeight      string         `json:"selected_weight,omitempty"`
	SelectedGrind       string         `json:"selected_grind,omitempty"`
	Quantity            int            `json:"quantity"`
}

// LineItemID builds the composite identity key for a product plus selection.
// Two additions with the same product and the same weight+grind selections
// are the same line item; any differing selection is a distinct one.
func LineItemID(productID, selectedWeight, selectedGrind string) string {
	weight := selectedWeight
	if weight == "" {
		weight = defaultOption
	}
	grind := selectedGrind
	if grind == "" {
		grind = defaultOption
	}
	return fmt.Sprintf("%s-%s-%s", productID, weight, grind)
}

// NewLineItem snapshots a product into a line item. The unit price is the
// weight-variant price when the catalog has one for the selection, so the
// stored price_number always matches what the product page displayed when
// the item was added.
func NewLineItem(product *models.Product, quantity int, selectedWeight, selectedGrind string) LineItem {
	if quantity < 1 {
		quantity = 1
	}

	item := LineItem{
		CartID:              LineItemID(product.ID, selectedWeight, selectedGrind),
		ProductID:           product.ID,
		Name:                product.Name,
		Description:         product.Description,
		PriceNumber:         product.PriceFor(selectedWeight),
		Img:                 product.Img,
		TastingNotes:        append([]string(nil), product.TastingNotes...),
		Acidity:             product.Acidity,
		Intensity:           product.Intensity,
		Bitterness:          product.Bitterness,
		TastingProfileImage: product.TastingProfileImage,
		SelectedWeight:      selectedWeight,
		SelectedGrind:       selectedGrind,
		Quantity:            quantity,
	}

	if product.Prices != nil {
		item.Prices = make(map[string]int, len(product.Prices))
		for weight, price := range product.Prices {
			item.Prices[weight] = price
		}
	}

	return item
}

// Cart holds the ordered line-item collection for one session.
type Cart struct {
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// FromItems hydrates a cart from a persisted line-item collection,
// preserving order.
func FromItems(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, len(items))}
	copy(c.items, items)
	return c
}

// AddItem merges the product into the cart. An existing line item with the
// same identity has its quantity incremented; nothing else about it is
// touched, notably not its snapshot price. A new selection is appended,
// preserving insertion order.
func (c *Cart) AddItem(product *models.Product, quantity int, selectedWeight, selectedGrind string) LineItem {
	if quantity < 1 {
		quantity = 1
	}

	cartID := LineItemID(product.ID, selectedWeight, selectedGrind)
	for i := range c.items {
		if c.items[i].CartID == cartID {
			c.items[i].Quantity += quantity
			return c.items[i]
		}
	}

	item := NewLineItem(product, quantity, selectedWeight, selectedGrind)
	c.items = append(c.items, item)
	return item
}

// RemoveItem deletes the line item with the matching id. An absent id is a
// silent no-op.
func (c *Cart) RemoveItem(cartID string) {
	for i := range c.items {
		if c.items[i].CartID == cartID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the item's quantity in place. Quantities below 1
// are ignored without deleting or clamping; unknown ids are ignored too.
func (c *Cart) UpdateQuantity(cartID string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].CartID == cartID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the collection.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the ordered line-item collection.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total sums snapshot unit price times quantity across all line items.
func (c *Cart) Total() int {
	total := 0
	for i := range c.items {
		total += c.items[i].PriceNumber * c.items[i].Quantity
	}
	return total
}

// Count sums quantities across all line items (the badge number, not the
// row count).
func (c *Cart) Count() int {
	count := 0
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}
