package public

import "github.com/paikari-bazar/internal/provider"

// Handler serves the storefront and customer-side API.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
