package service

import (
	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
)

// ResponseAssembler merges an order with the settled fetch outcomes into an
// enriched view. It is pure: no I/O, no failure path of its own.
type ResponseAssembler struct{}

func NewResponseAssembler() *ResponseAssembler {
	return &ResponseAssembler{}
}

// Assemble zips itemOutcomes onto order.Items by original index. Completion
// order of the concurrent fetches must never leak into the output, so the
// item at position i always gets the outcome at position i. Any outcome other
// than Found leaves the detail field nil.
func (a *ResponseAssembler) Assemble(order *domain.Order, userOutcome dto.FetchOutcome, itemOutcomes []dto.FetchOutcome) *domain.EnrichedOrder {
	enriched := &domain.EnrichedOrder{Order: *order}

	if userOutcome.Status == dto.FetchFound {
		enriched.UserDetails = userOutcome.Details
	}

	enriched.Items = make([]domain.EnrichedItem, len(order.Items))
	for i, item := range order.Items {
		enriched.Items[i] = domain.EnrichedItem{OrderItem: item}
		if i < len(itemOutcomes) && itemOutcomes[i].Status == dto.FetchFound {
			enriched.Items[i].ProductDetails = itemOutcomes[i].Details
		}
	}

	return enriched
}
