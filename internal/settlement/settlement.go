package settlement

import (
	"fmt"
	"time"

	"auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// Accounts is the subset of the account store that settlement mutates
type Accounts interface {
	Debit(userID string, amount float64) error
	Credit(userID string, amount float64) error
	RecordOwnedItem(userID, itemID string) error
	RemoveOwnedItem(userID, itemID string) error
	RecordSoldItem(userID, itemID string) error
}

// Engine resolves closed auctions and moves money and ownership.
// It holds no auction state; callers cache the outcome it returns.
type Engine struct {
	accounts Accounts
}

// NewEngine creates a settlement engine backed by the given account store
func NewEngine(accounts Accounts) *Engine {
	return &Engine{accounts: accounts}
}

// ReserveMet reports whether amount reaches the reserve price (inclusive).
// No rounding is applied: 49.996 does not meet a reserve of 50.
func ReserveMet(amount, reserve float64) bool {
	return decimal.NewFromFloat(amount).GreaterThanOrEqual(decimal.NewFromFloat(reserve))
}

// Decide computes the outcome for an auction without side effects
func Decide(item models.Item, best *models.Bid, now time.Time) models.SettlementOutcome {
	outcome := models.SettlementOutcome{
		AuctionID: item.ItemID,
		SettledAt: now,
	}

	switch {
	case best == nil:
		outcome.Status = models.OutcomeUnsold
		outcome.Reason = models.ReasonNoBids
	case !ReserveMet(best.Amount, item.ReservePrice):
		highest := *best
		outcome.Status = models.OutcomeUnsold
		outcome.Reason = models.ReasonReserveNotMet
		outcome.HighestBid = &highest
	default:
		winning := *best
		outcome.Status = models.OutcomeSold
		outcome.WinningBid = &winning
		outcome.HighestBid = &winning
	}
	return outcome
}

// Resolve decides the outcome and, for a sale, applies the transfer.
// When the transfer fails the outcome must not be recorded as settled.
func (e *Engine) Resolve(item models.Item, best *models.Bid, now time.Time) (models.SettlementOutcome, error) {
	outcome := Decide(item, best, now)
	if !outcome.Sold() {
		return outcome, nil
	}

	if err := e.transfer(item, *outcome.WinningBid); err != nil {
		return models.SettlementOutcome{}, fmt.Errorf("settlement: auction %s: %w", item.ItemID, err)
	}
	return outcome, nil
}

// transfer debits the winner and credits the seller, then records ownership.
// Any failure after the debit is compensated so balances stay unchanged.
func (e *Engine) transfer(item models.Item, winning models.Bid) error {
	winner, seller, amount := winning.UserID, item.SellerID, winning.Amount

	if err := e.accounts.Debit(winner, amount); err != nil {
		return fmt.Errorf("debit winner %s: %w", winner, err)
	}

	if err := e.accounts.Credit(seller, amount); err != nil {
		e.refund(winner, amount, item.ItemID)
		return fmt.Errorf("credit seller %s: %w", seller, err)
	}

	if err := e.accounts.RecordOwnedItem(winner, item.ItemID); err != nil {
		e.reverse(winner, seller, amount, item.ItemID)
		return fmt.Errorf("record owned item for %s: %w", winner, err)
	}

	if err := e.accounts.RecordSoldItem(seller, item.ItemID); err != nil {
		e.disown(winner, item.ItemID)
		e.reverse(winner, seller, amount, item.ItemID)
		return fmt.Errorf("record sold item for %s: %w", seller, err)
	}
	return nil
}

func (e *Engine) disown(winner, itemID string) {
	if err := e.accounts.RemoveOwnedItem(winner, itemID); err != nil {
		utils.Error("settlement: failed to roll back ownership", map[string]any{
			"item_id": itemID,
			"user_id": winner,
			"error":   err.Error(),
		})
	}
}

func (e *Engine) reverse(winner, seller string, amount float64, itemID string) {
	if err := e.accounts.Debit(seller, amount); err != nil {
		utils.Error("settlement: failed to reverse seller credit", map[string]any{
			"item_id": itemID,
			"user_id": seller,
			"amount":  amount,
			"error":   err.Error(),
		})
	}
	e.refund(winner, amount, itemID)
}

func (e *Engine) refund(winner string, amount float64, itemID string) {
	if err := e.accounts.Credit(winner, amount); err != nil {
		utils.Error("settlement: failed to refund winner", map[string]any{
			"item_id": itemID,
			"user_id": winner,
			"amount":  amount,
			"error":   err.Error(),
		})
	}
}
