package wholesaler

import "github.com/paikari-bazar/internal/provider"

// Handler serves the wholesaler portal API.
type Handler struct {
	*provider.Container
}

// New creates the wholesaler handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
