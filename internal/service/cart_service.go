package service

import (
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService manages the per-user cart. Carts never snapshot prices,
// every read prices lines from the live items.
type CartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

// CartLine is one priced cart row.
type CartLine struct {
	ItemID          uint         `json:"item_id"`
	ItemName        string       `json:"item_name"`
	ImageURL        string       `json:"image_url"`
	UnitPrice       models.Money `json:"unit_price"`
	Quantity        int          `json:"quantity"`
	MinimumQuantity int          `json:"minimum_quantity"`
	InStock         bool         `json:"in_stock"`
	Available       bool         `json:"available"`
	LineTotal       models.Money `json:"line_total"`
}

// CartView is the full priced cart.
type CartView struct {
	Lines []CartLine   `json:"lines"`
	Total models.Money `json:"total"`
}

// GetCart returns the user's cart priced from the live items. Lines
// whose item vanished or lost approval are flagged unavailable and
// excluded from the total.
func (s *CartService) GetCart(userID uint) (*CartView, error) {
	rows, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Lines: make([]CartLine, 0, len(rows))}
	total := decimal.Zero
	for _, row := range rows {
		line := CartLine{
			ItemID:   row.ItemID,
			Quantity: row.Quantity,
		}
		if row.Item != nil {
			line.ItemName = row.Item.Name
			line.ImageURL = row.Item.ImageURL
			line.UnitPrice = row.Item.Price
			line.MinimumQuantity = row.Item.MinimumQuantity
			line.InStock = row.Item.InStock
			line.Available = row.Item.InStock &&
				row.Item.Product != nil &&
				row.Item.Product.Status == constants.ProductStatusApproved
			lineTotal := row.Item.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))
			line.LineTotal = models.NewMoneyFromDecimal(lineTotal)
			if line.Available {
				total = total.Add(lineTotal)
			}
		}
		view.Lines = append(view.Lines, line)
	}
	view.Total = models.NewMoneyFromDecimal(total)
	return view, nil
}

// AddItem puts an item in the cart. Adding an item already present
// merges by summing quantities. The resulting quantity must meet the
// item's minimum order quantity.
func (s *CartService) AddItem(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	item, err := s.orderableItem(itemID)
	if err != nil {
		return err
	}

	existing, err := s.cartRepo.GetByUserAndItem(userID, itemID)
	if err != nil {
		return err
	}

	resulting := quantity
	if existing != nil {
		resulting += existing.Quantity
	}
	if resulting < item.MinimumQuantity {
		return ErrBelowMinimumQty
	}

	now := time.Now()
	row := &models.CartItem{
		UserID:    userID,
		ItemID:    itemID,
		Quantity:  resulting,
		UpdatedAt: now,
	}
	if existing != nil {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	} else {
		row.CreatedAt = now
	}
	return s.cartRepo.Upsert(row)
}

// SetQuantity replaces a cart line's quantity.
func (s *CartService) SetQuantity(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	existing, err := s.cartRepo.GetByUserAndItem(userID, itemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartItemAbsent
	}

	item, err := s.orderableItem(itemID)
	if err != nil {
		return err
	}
	if quantity < item.MinimumQuantity {
		return ErrBelowMinimumQty
	}

	existing.Quantity = quantity
	existing.UpdatedAt = time.Now()
	return s.cartRepo.Upsert(existing)
}

// RemoveItem deletes a cart line. Removing a line that is not in the
// cart is a no-op.
func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.cartRepo.DeleteByUserAndItem(userID, itemID)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}

// orderableItem loads an item and checks it can be ordered right now.
func (s *CartService) orderableItem(itemID uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !item.InStock {
		return nil, ErrItemNotAvailable
	}
	if item.Product == nil || item.Product.Status != constants.ProductStatusApproved {
		return nil, ErrItemNotAvailable
	}
	return item, nil
}
