package marketplace

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"auction-engine/internal/auction"
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/settlement"
	"auction-engine/utils"
)

// Publisher receives auction events after they happen
type Publisher interface {
	Publish(event models.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(models.Event) {}

// Directory owns every auction and routes requests to the right one.
//
// The directory lock only guards the maps; each auction serializes its own
// bids and settlement, so work on different auctions runs in parallel.
type Directory struct {
	mu           sync.RWMutex
	auctions     map[string]*auction.Auction // key: auctionID
	userAuctions map[string][]string         // key: sellerID -> auctionIDs in creation order

	accounts       repository.AccountDB
	engine         *settlement.Engine
	publisher      Publisher
	now            func() time.Time
	newID          func() string
	initialBalance float64
}

// Option configures a Directory
type Option func(*Directory)

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithPublisher sends bid and settlement events to p
func WithPublisher(p Publisher) Option {
	return func(d *Directory) { d.publisher = p }
}

// WithIDGenerator overrides how user and auction ids are assigned
func WithIDGenerator(newID func() string) Option {
	return func(d *Directory) { d.newID = newID }
}

// WithInitialBalance sets the balance granted to newly registered users
func WithInitialBalance(amount float64) Option {
	return func(d *Directory) { d.initialBalance = amount }
}

// NewDirectory creates an empty marketplace backed by the account store
func NewDirectory(accounts repository.AccountDB, opts ...Option) *Directory {
	d := &Directory{
		auctions:     make(map[string]*auction.Auction),
		userAuctions: make(map[string][]string),
		accounts:     accounts,
		engine:       settlement.NewEngine(accounts),
		publisher:    nopPublisher{},
		now:          func() time.Time { return time.Now().UTC() },
		newID:        utils.GenerateID,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateAuction lists a new item for sale by userID
func (d *Directory) CreateAuction(userID string, req models.NewAuction) (models.AuctionView, error) {
	if userID == "" {
		return models.AuctionView{}, fmt.Errorf("marketplace: create auction: %w", biddingerrors.ErrNotAuthenticated)
	}
	if err := validateNewAuction(req); err != nil {
		return models.AuctionView{}, err
	}
	if _, err := d.accounts.GetUser(userID); err != nil {
		return models.AuctionView{}, fmt.Errorf("marketplace: create auction: %w", err)
	}

	now := d.now()
	item := models.Item{
		ItemID:        d.newID(),
		Name:          req.Name,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		ReservePrice:  req.ReservePrice,
		SellerID:      userID,
		CreatedAt:     now,
		Duration:      req.Duration,
	}
	a := auction.New(item)

	d.mu.Lock()
	d.auctions[item.ItemID] = a
	d.userAuctions[userID] = append(d.userAuctions[userID], item.ItemID)
	d.mu.Unlock()

	utils.Info("marketplace: auction created", map[string]any{
		"auction_id":     item.ItemID,
		"seller_id":      userID,
		"starting_price": item.StartingPrice,
		"reserve_price":  item.ReservePrice,
		"ends_at":        now.Add(item.Duration).Format(time.RFC3339),
	})
	return a.View(now), nil
}

func validateNewAuction(req models.NewAuction) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("marketplace: %w - missing item name", biddingerrors.ErrInvalidAuction)
	case !validPrice(req.StartingPrice):
		return fmt.Errorf("marketplace: %w - invalid starting price", biddingerrors.ErrInvalidAuction)
	case !validPrice(req.ReservePrice):
		return fmt.Errorf("marketplace: %w - invalid reserve price", biddingerrors.ErrInvalidAuction)
	case req.Duration <= 0:
		return fmt.Errorf("marketplace: %w - duration must be positive", biddingerrors.ErrInvalidAuction)
	}
	return nil
}

func validPrice(p float64) bool {
	return p >= 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}

// PlaceBid checks the bidder can afford amount and submits it to the auction
func (d *Directory) PlaceBid(userID, auctionID string, amount float64) (models.Bid, error) {
	if userID == "" {
		return models.Bid{}, fmt.Errorf("marketplace: place bid: %w", biddingerrors.ErrNotAuthenticated)
	}

	a, err := d.lookup(auctionID)
	if err != nil {
		return models.Bid{}, err
	}

	balance, err := d.accounts.GetBalance(userID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("marketplace: place bid: %w", err)
	}
	if balance < amount {
		return models.Bid{}, fmt.Errorf("marketplace: %w - balance %.2f, bid %.2f", biddingerrors.ErrInsufficientFunds, balance, amount)
	}

	bid, err := a.PlaceBid(userID, amount, d.now())
	if err != nil {
		return models.Bid{}, fmt.Errorf("marketplace: place bid: %w", err)
	}

	if err := d.accounts.RecordBid(userID, bid); err != nil {
		utils.Warn("marketplace: failed to record bid in user history", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"bid_id":     bid.BidID,
			"error":      err.Error(),
		})
	}

	d.publisher.Publish(models.Event{Type: models.EventBidAccepted, AuctionID: auctionID, Bid: &bid, At: bid.CreatedAt})
	return bid, nil
}

// EndAuction closes the auction and settles it
func (d *Directory) EndAuction(auctionID string) (models.SettlementOutcome, error) {
	a, err := d.lookup(auctionID)
	if err != nil {
		return models.SettlementOutcome{}, err
	}
	return d.settle(a, a.End)
}

// SettleAuction settles an auction that is closed or expired. Once settled it
// returns the recorded outcome, so it doubles as the retry path after a failed
// settlement.
func (d *Directory) SettleAuction(auctionID string) (models.SettlementOutcome, error) {
	a, err := d.lookup(auctionID)
	if err != nil {
		return models.SettlementOutcome{}, err
	}
	if outcome, ok := a.Outcome(); ok {
		return outcome, nil
	}
	return d.settle(a, a.Settle)
}

func (d *Directory) settle(a *auction.Auction, step func(auction.Resolver, time.Time) (models.SettlementOutcome, error)) (models.SettlementOutcome, error) {
	outcome, err := step(d.engine, d.now())
	if err != nil {
		utils.Warn("marketplace: settlement failed", map[string]any{
			"auction_id": a.ID(),
			"error":      err.Error(),
		})
		return models.SettlementOutcome{}, fmt.Errorf("marketplace: settle: %w", err)
	}

	fields := map[string]any{
		"auction_id": a.ID(),
		"status":     outcome.Status,
	}
	if outcome.Reason != "" {
		fields["reason"] = outcome.Reason
	}
	if outcome.HighestBid != nil {
		fields["user_id"] = outcome.HighestBid.UserID
		fields["amount"] = outcome.HighestBid.Amount
	}
	utils.Info("marketplace: auction settled", fields)

	d.publisher.Publish(models.Event{Type: models.EventAuctionSettled, AuctionID: a.ID(), Outcome: &outcome, At: outcome.SettledAt})
	return outcome, nil
}

// GetAuction returns a snapshot of one auction
func (d *Directory) GetAuction(auctionID string) (models.AuctionView, error) {
	a, err := d.lookup(auctionID)
	if err != nil {
		return models.AuctionView{}, err
	}
	return a.View(d.now()), nil
}

// ActiveAuctions returns every auction still accepting bids, in no particular order
func (d *Directory) ActiveAuctions() []models.AuctionView {
	now := d.now()
	views := make([]models.AuctionView, 0)
	for _, a := range d.all() {
		if a.IsAcceptingBids(now) {
			views = append(views, a.View(now))
		}
	}
	return views
}

// Search returns auctions whose item name or description contains keyword.
// Matching is case-sensitive.
func (d *Directory) Search(keyword string) []models.AuctionView {
	now := d.now()
	views := make([]models.AuctionView, 0)
	for _, a := range d.all() {
		item := a.Item()
		if strings.Contains(item.Name, keyword) || strings.Contains(item.Description, keyword) {
			views = append(views, a.View(now))
		}
	}
	return views
}

// AuctionsByUser returns the auctions userID created, oldest first
func (d *Directory) AuctionsByUser(userID string) ([]models.AuctionView, error) {
	if _, err := d.accounts.GetUser(userID); err != nil {
		return nil, fmt.Errorf("marketplace: auctions by user: %w", err)
	}

	d.mu.RLock()
	ids := append([]string(nil), d.userAuctions[userID]...)
	d.mu.RUnlock()

	now := d.now()
	views := make([]models.AuctionView, 0, len(ids))
	for _, id := range ids {
		if a, err := d.lookup(id); err == nil {
			views = append(views, a.View(now))
		}
	}
	return views, nil
}

// BidHistory returns accepted bids chronologically, or best first when ranked is set
func (d *Directory) BidHistory(auctionID string, ranked bool) ([]models.Bid, error) {
	a, err := d.lookup(auctionID)
	if err != nil {
		return nil, err
	}
	if ranked {
		return a.RankedBids(), nil
	}
	return a.History(), nil
}

// WinningBid returns the current best bid
func (d *Directory) WinningBid(auctionID string) (models.Bid, error) {
	a, err := d.lookup(auctionID)
	if err != nil {
		return models.Bid{}, err
	}
	bid, ok := a.BestBid()
	if !ok {
		return models.Bid{}, fmt.Errorf("marketplace: auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return bid, nil
}

// TopBidders returns the leaderboard of personal bests
func (d *Directory) TopBidders(auctionID string, limit int) ([]models.BidderStanding, error) {
	a, err := d.lookup(auctionID)
	if err != nil {
		return nil, err
	}
	return a.Leaderboard(limit), nil
}

// MyBestBid returns userID's highest bid on the auction
func (d *Directory) MyBestBid(userID, auctionID string) (float64, error) {
	if userID == "" {
		return 0, fmt.Errorf("marketplace: my best bid: %w", biddingerrors.ErrNotAuthenticated)
	}
	a, err := d.lookup(auctionID)
	if err != nil {
		return 0, err
	}
	amount, ok := a.BestBidFor(userID)
	if !ok {
		return 0, fmt.Errorf("marketplace: user %s on auction %s: %w", userID, auctionID, biddingerrors.ErrNoBids)
	}
	return amount, nil
}

func (d *Directory) lookup(auctionID string) (*auction.Auction, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("marketplace: auction %q: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return a, nil
}

func (d *Directory) all() []*auction.Auction {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*auction.Auction, 0, len(d.auctions))
	for _, a := range d.auctions {
		list = append(list, a)
	}
	return list
}

func (d *Directory) auctionCount(userID string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.userAuctions[userID])
}
