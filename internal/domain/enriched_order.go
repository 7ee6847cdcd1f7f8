package domain

import "encoding/json"

// EnrichedOrder is an Order merged with details fetched from the user and
// product services at read time. It is built per request and never persisted.
// A nil detail field means the owning service was unreachable or does not
// know the entity, not that the order or item is missing.
type EnrichedOrder struct {
	Order
	UserDetails json.RawMessage
	Items       []EnrichedItem
}

// EnrichedItem holds an order item plus the product payload fetched for it.
// Items keep the exact position they have on the stored order.
type EnrichedItem struct {
	OrderItem
	ProductDetails json.RawMessage
}
