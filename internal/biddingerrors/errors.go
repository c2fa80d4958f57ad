package biddingerrors

import "errors"

// Kind classifies an error for callers that need to react to a category
// rather than to a specific sentinel (e.g. the HTTP layer).
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindState
	KindNotFound
	KindAuth
	KindInsufficientFunds
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindState:
		return "state"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func newError(kind Kind, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindOf returns the Kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUnknown
}

// Validation errors
var (
	ErrInvalidBid               = newError(KindValidation, "invalid bid")
	ErrBelowStartingPrice       = newError(KindValidation, "bid must exceed the starting price")
	ErrNotHigherThanCurrentBest = newError(KindValidation, "bid must exceed the current best bid")
	ErrSelfBid                  = newError(KindValidation, "seller cannot bid on own auction")
	ErrInvalidAuction           = newError(KindValidation, "invalid auction details")
	ErrInvalidAmount            = newError(KindValidation, "amount must be positive")
	ErrInvalidUser              = newError(KindValidation, "invalid user details")
)

// State errors
var (
	ErrAuctionClosed  = newError(KindState, "auction is not accepting bids")
	ErrAlreadyEnded   = newError(KindState, "auction already ended")
	ErrNotYetClosed   = newError(KindState, "auction is still accepting bids")
	ErrAlreadySettled = newError(KindState, "auction already settled")
)

// Lookup errors
var (
	ErrAuctionNotFound = newError(KindNotFound, "auction not found")
	ErrUserNotFound    = newError(KindNotFound, "user not found")
	ErrNoBids          = newError(KindNotFound, "no bids found for auction")
)

var (
	ErrNotAuthenticated  = newError(KindAuth, "no current user")
	ErrInsufficientFunds = newError(KindInsufficientFunds, "insufficient balance")
	ErrUsernameTaken     = newError(KindConflict, "username already taken")
)
