package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("purchase quantity must be positive")
	ErrNegativeTotal   = errors.New("purchase total cannot be negative")
	ErrMissingEventID  = errors.New("purchase missing event id")
)

// Purchase is the unit of payment: one transaction covering quantity seats,
// with the total actually charged after any discount. It is created by the
// external checkout flow and is strictly read-only here. Revenue
// reconciliation counts each purchase total exactly once, never
// price x seats.
type Purchase struct {
	id             uuid.UUID
	eventID        uuid.UUID
	quantity       int32
	totalPaidCents int64
	promoCode      *string
	purchaserName  string
	purchaserEmail string
	purchasedAt    time.Time
}

func Reconstruct(
	id, eventID uuid.UUID,
	quantity int32,
	totalPaidCents int64,
	promoCode *string,
	purchaserName, purchaserEmail string,
	purchasedAt time.Time,
) (*Purchase, error) {
	if eventID == uuid.Nil {
		return nil, ErrMissingEventID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if totalPaidCents < 0 {
		return nil, ErrNegativeTotal
	}
	return &Purchase{
		id:             id,
		eventID:        eventID,
		quantity:       quantity,
		totalPaidCents: totalPaidCents,
		promoCode:      promoCode,
		purchaserName:  purchaserName,
		purchaserEmail: purchaserEmail,
		purchasedAt:    purchasedAt,
	}, nil
}

// PerSeatCents is the seat's share of what this purchase actually charged.
// It is display pricing only; recognized revenue always uses the undivided
// total.
func (p *Purchase) PerSeatCents() int64 {
	return p.totalPaidCents / int64(p.quantity)
}

func (p *Purchase) ID() uuid.UUID          { return p.id }
func (p *Purchase) EventID() uuid.UUID     { return p.eventID }
func (p *Purchase) Quantity() int32        { return p.quantity }
func (p *Purchase) TotalPaidCents() int64  { return p.totalPaidCents }
func (p *Purchase) PromoCode() *string     { return p.promoCode }
func (p *Purchase) PurchaserName() string  { return p.purchaserName }
func (p *Purchase) PurchaserEmail() string { return p.purchaserEmail }
func (p *Purchase) PurchasedAt() time.Time { return p.purchasedAt }
