package marketplace

import (
	"context"
	"errors"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/utils"
)

// EndExpired ends every auction whose bidding window has passed without an
// explicit end request, and retries settlement for auctions left closed by an
// earlier failure. It returns how many auctions it settled.
func (d *Directory) EndExpired() int {
	now := d.now()
	settled := 0
	for _, a := range d.all() {
		var err error
		switch {
		case a.NeedsEnding(now):
			_, err = d.EndAuction(a.ID())
		case a.NeedsSettling():
			_, err = d.SettleAuction(a.ID())
		default:
			continue
		}

		if err != nil {
			// another caller ended it between the check and here
			if errors.Is(err, biddingerrors.ErrAlreadyEnded) {
				continue
			}
			utils.Warn("marketplace: sweep could not settle auction", map[string]any{
				"auction_id": a.ID(),
				"error":      err.Error(),
			})
			continue
		}
		settled++
	}
	return settled
}

// RunSweeper calls EndExpired every interval until ctx is done
func (d *Directory) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := d.EndExpired(); n > 0 {
				utils.Info("marketplace: ended expired auctions", map[string]any{"count": n})
			}
		}
	}
}
