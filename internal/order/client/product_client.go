package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ProductClient fetches product details from the product service.
type ProductClient struct {
	serviceClient
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{serviceClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		service:    "product-service",
	}}
}

func (c *ProductClient) FetchProduct(ctx context.Context, productID int) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/api/products/%d", c.baseURL, productID)
	return c.fetch(ctx, url, fmt.Sprintf("product %d not found", productID))
}
