package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP responses, repositories never return them.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserDisabled       = errors.New("account disabled")
	ErrUserSuspended      = errors.New("account suspended")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrProfileEmpty       = errors.New("no profile fields to update")
	ErrInvalidStatus      = errors.New("invalid account status")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryNotEmpty = errors.New("category still has products")
	ErrInvalidSection   = errors.New("unknown catalog section")

	ErrProductNotFound    = errors.New("product not found")
	ErrProductNotApproved = errors.New("product is not approved")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemNotAvailable   = errors.New("item is not available for ordering")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrBelowMinimumQty    = errors.New("quantity is below the item minimum")

	ErrCartEmpty      = errors.New("cart is empty")
	ErrCartItemAbsent = errors.New("item is not in the cart")

	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderStatusInvalid  = errors.New("order status transition not allowed")
	ErrAdvanceTooLow       = errors.New("advance payment below the required minimum")
	ErrAdvanceExceedsTotal = errors.New("advance payment exceeds the order total")
	ErrTransactionIDEmpty  = errors.New("bkash transaction id is required")
	ErrShippingInfoEmpty   = errors.New("shipping contact details are incomplete")

	ErrTicketNotFound       = errors.New("ticket not found")
	ErrTicketClosed         = errors.New("ticket is already resolved")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageEmpty         = errors.New("message body is empty")
	ErrChatSelfTarget       = errors.New("cannot open a conversation with yourself")
	ErrNotWholesaler        = errors.New("account is not a wholesaler")

	ErrSuspensionNotFound = errors.New("suspension not found")
	ErrSuspensionInvalid  = errors.New("temporary suspension needs a future expiry")

	ErrEmailServiceDisabled      = errors.New("email sending disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("recipient address rejected")

	ErrAdminExists    = errors.New("admin username already taken")
	ErrAdminNotFound  = errors.New("admin not found")
	ErrAdminDisabled  = errors.New("admin account disabled")
	ErrLastSuperAdmin = errors.New("cannot remove the last super admin")
)
