package repository

//go:generate mockgen -destination=mock_repository.go -package=repository auction-engine/internal/repository AccountDB

import (
	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"fmt"
	"math"
	"sync"

	"github.com/shopspring/decimal"
)

// AccountDB defines the user account storage consumed by the marketplace
type AccountDB interface {
	CreateUser(user model.User) error
	GetUser(userID string) (model.User, error)
	FindByUsername(username string) (model.User, error)
	GetBalance(userID string) (float64, error)
	Debit(userID string, amount float64) error
	Credit(userID string, amount float64) error
	RecordBid(userID string, bid model.Bid) error
	RecordOwnedItem(userID, itemID string) error
	RemoveOwnedItem(userID, itemID string) error
	RecordSoldItem(userID, itemID string) error
}

type account struct {
	user    model.User
	balance decimal.Decimal
}

// MemoryRepo is a concurrency-safe in-memory implementation of AccountDB.
// Balances are held as decimals so repeated credits and debits do not drift.
type MemoryRepo struct {
	mu        sync.RWMutex
	accounts  map[string]*account // key: userID -> value: account
	usernames map[string]string   // key: username -> value: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		accounts:  make(map[string]*account),
		usernames: make(map[string]string),
	}
}

// CreateUser stores a new user; the username must be unused
func (r *MemoryRepo) CreateUser(user model.User) error {
	if user.UserID == "" || user.Username == "" {
		return fmt.Errorf("create user: %w - missing id or username", biddingerrors.ErrInvalidUser)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.usernames[user.Username]; taken {
		return fmt.Errorf("create user %s: %w", user.Username, biddingerrors.ErrUsernameTaken)
	}
	if _, exists := r.accounts[user.UserID]; exists {
		return fmt.Errorf("create user %s: %w - duplicate id", user.UserID, biddingerrors.ErrInvalidUser)
	}

	r.accounts[user.UserID] = &account{
		user:    user,
		balance: decimal.NewFromFloat(user.Balance),
	}
	r.usernames[user.Username] = user.UserID
	return nil
}

// GetUser returns a copy of the user with its current balance
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return acc.snapshot(), nil
}

// FindByUsername resolves a username to its user
func (r *MemoryRepo) FindByUsername(username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.usernames[username]
	if !ok {
		return model.User{}, fmt.Errorf("find user %q: %w", username, biddingerrors.ErrUserNotFound)
	}
	return r.accounts[userID].snapshot(), nil
}

// GetBalance returns the user's current balance
func (r *MemoryRepo) GetBalance(userID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return 0, fmt.Errorf("get balance for %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return acc.balance.InexactFloat64(), nil
}

// Debit subtracts amount from the balance. It never leaves a negative balance.
func (r *MemoryRepo) Debit(userID string, amount float64) error {
	delta, err := toAmount(amount)
	if err != nil {
		return fmt.Errorf("debit %s: %w", userID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return fmt.Errorf("debit %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	if acc.balance.LessThan(delta) {
		return fmt.Errorf("debit %s: %w - balance %s, requested %s",
			userID, biddingerrors.ErrInsufficientFunds, acc.balance.StringFixed(2), delta.StringFixed(2))
	}
	acc.balance = acc.balance.Sub(delta)
	return nil
}

// Credit adds amount to the balance
func (r *MemoryRepo) Credit(userID string, amount float64) error {
	delta, err := toAmount(amount)
	if err != nil {
		return fmt.Errorf("credit %s: %w", userID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return fmt.Errorf("credit %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	acc.balance = acc.balance.Add(delta)
	return nil
}

// RecordBid appends an accepted bid to the user's bid history
func (r *MemoryRepo) RecordBid(userID string, bid model.Bid) error {
	return r.update(userID, "record bid", func(u *model.User) {
		u.BidIDs = append(u.BidIDs, bid.BidID)
	})
}

// RecordOwnedItem marks an item as won by the user
func (r *MemoryRepo) RecordOwnedItem(userID, itemID string) error {
	return r.update(userID, "record owned item", func(u *model.User) {
		u.OwnedItems = append(u.OwnedItems, itemID)
	})
}

// RemoveOwnedItem undoes RecordOwnedItem. Removing an item the user does not
// own is a no-op.
func (r *MemoryRepo) RemoveOwnedItem(userID, itemID string) error {
	return r.update(userID, "remove owned item", func(u *model.User) {
		for i := len(u.OwnedItems) - 1; i >= 0; i-- {
			if u.OwnedItems[i] == itemID {
				u.OwnedItems = append(u.OwnedItems[:i], u.OwnedItems[i+1:]...)
				return
			}
		}
	})
}

// RecordSoldItem marks an item as sold by the user
func (r *MemoryRepo) RecordSoldItem(userID, itemID string) error {
	return r.update(userID, "record sold item", func(u *model.User) {
		u.SoldItems = append(u.SoldItems, itemID)
	})
}

func (r *MemoryRepo) update(userID, op string, fn func(u *model.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return fmt.Errorf("%s for %s: %w", op, userID, biddingerrors.ErrUserNotFound)
	}
	fn(&acc.user)
	return nil
}

func (a *account) snapshot() model.User {
	u := a.user
	u.Balance = a.balance.InexactFloat64()
	u.BidIDs = append([]string(nil), a.user.BidIDs...)
	u.OwnedItems = append([]string(nil), a.user.OwnedItems...)
	u.SoldItems = append([]string(nil), a.user.SoldItems...)
	return u
}

func toAmount(amount float64) (decimal.Decimal, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return decimal.Zero, biddingerrors.ErrInvalidAmount
	}
	return decimal.NewFromFloat(amount), nil
}
