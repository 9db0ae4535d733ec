package service

import (
	"strings"

	"github.com/paikari-bazar/internal/constants"
)

// allowedTransitions is the order status machine. Completed and
// cancelled are terminal, cancellation is only possible before
// processing starts.
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusCompleted: true,
	},
	constants.OrderStatusCompleted: {},
	constants.OrderStatusCancelled: {},
}

// CanTransitionOrderStatus reports whether an order may move from one
// status to another.
func CanTransitionOrderStatus(from, to string) bool {
	next, ok := allowedTransitions[strings.ToLower(strings.TrimSpace(from))]
	if !ok {
		return false
	}
	return next[strings.ToLower(strings.TrimSpace(to))]
}

// IsValidOrderStatus reports whether the status is one of the known states.
func IsValidOrderStatus(status string) bool {
	_, ok := allowedTransitions[strings.ToLower(strings.TrimSpace(status))]
	return ok
}
