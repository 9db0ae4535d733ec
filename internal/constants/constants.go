package constants

// Order status constants.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Product approval status constants.
const (
	ProductStatusPending  = "pending"
	ProductStatusApproved = "approved"
	ProductStatusRejected = "rejected"
)

// Category section constants.
const (
	CategorySectionLocal   = "local"
	CategorySectionChinese = "chinese"
)

// User role constants.
const (
	RoleCustomer   = "customer"
	RoleWholesaler = "wholesaler"
)

// User status constants.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Admin status constants.
const (
	AdminStatusActive   = "active"
	AdminStatusDisabled = "disabled"
)

// Ticket status constants.
const (
	TicketStatusOpen     = "open"
	TicketStatusResolved = "resolved"
)

// Message/reply author constants.
const (
	AuthorTypeUser  = "user"
	AuthorTypeAdmin = "admin"
)

// Chat sender constants.
const (
	SenderTypeCustomer   = "customer"
	SenderTypeWholesaler = "wholesaler"
)

// Advance payment policy modes.
const (
	AdvanceModeEntered = "entered"
	AdvanceModeAuto    = "auto"
)

// Queue constants.
const (
	QueueDefault               = "default"
	TaskOrderConfirmationEmail = "order:email:confirmation"
	TaskOrderStatusEmail       = "order:email:status"
	TaskTicketReplyEmail       = "ticket:email:reply"
)

// Cache defaults.
const (
	RedisPrefixDefault = "pb"
)

// Setting keys.
const (
	SettingKeyBkashNumber       = "bkash_payment_number"
	SettingKeyAdvanceMode       = "advance_mode"
	SettingKeyAdvanceMinPercent = "advance_min_percent"
	SettingKeyAdvancePercent    = "advance_percent"
)

// Order number prefix.
const (
	OrderNoPrefix = "PB"
)
