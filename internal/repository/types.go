package repository

import "time"

// ProductListFilter filters product list queries.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	WholesalerID uint
	Status       string
	Search       string
	WithCategory bool
	WithItems    bool
}

// ItemListFilter filters item list queries.
type ItemListFilter struct {
	Page         int
	PageSize     int
	ProductID    uint
	Search       string
	InStockOnly  bool
	ApprovedOnly bool // restrict to items under approved products
	WholesalerID uint
	WithProduct  bool
}

// OrderListFilter filters order list queries.
type OrderListFilter struct {
	Page         int
	PageSize     int
	UserID       uint
	WholesalerID uint
	Status       string
	OrderNo      string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// UserListFilter filters user list queries.
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Status   string
}

// TicketListFilter filters ticket list queries.
type TicketListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// SuspensionListFilter filters suspension list queries.
type SuspensionListFilter struct {
	Page       int
	PageSize   int
	UserID     uint
	ActiveOnly bool
}

// MessageListFilter filters chat message queries.
type MessageListFilter struct {
	Page           int
	PageSize       int
	ConversationID uint
}
