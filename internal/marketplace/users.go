package marketplace

import (
	"fmt"
	"strings"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"
)

// Register creates a user with the configured starting balance
func (d *Directory) Register(username, email string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("marketplace: register: %w - missing username", biddingerrors.ErrInvalidUser)
	}

	user := models.User{
		UserID:    d.newID(),
		Username:  username,
		Email:     strings.TrimSpace(email),
		Balance:   d.initialBalance,
		CreatedAt: d.now(),
	}
	if err := d.accounts.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("marketplace: register: %w", err)
	}

	utils.Info("marketplace: user registered", map[string]any{"user_id": user.UserID, "username": username})
	return d.accounts.GetUser(user.UserID)
}

// Login resolves a username to its user. The caller keeps the returned id
// and passes it explicitly on later calls.
func (d *Directory) Login(username string) (models.User, error) {
	user, err := d.accounts.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.User{}, fmt.Errorf("marketplace: login: %w", err)
	}
	return user, nil
}

// AddBalance tops up the user's balance
func (d *Directory) AddBalance(userID string, amount float64) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("marketplace: add balance: %w", biddingerrors.ErrNotAuthenticated)
	}
	if err := d.accounts.Credit(userID, amount); err != nil {
		return models.User{}, fmt.Errorf("marketplace: add balance: %w", err)
	}
	return d.accounts.GetUser(userID)
}

// Profile returns the user together with marketplace activity counts
func (d *Directory) Profile(userID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, fmt.Errorf("marketplace: profile: %w", biddingerrors.ErrNotAuthenticated)
	}
	user, err := d.accounts.GetUser(userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("marketplace: profile: %w", err)
	}
	return models.Profile{
		User:            user,
		BidsPlaced:      len(user.BidIDs),
		AuctionsCreated: d.auctionCount(userID),
	}, nil
}
