package marketplace

import (
	"fmt"
	"time"

	"auction-engine/internal/models"
)

// SeedDemoData registers a demo seller and lists a few auctions
func (d *Directory) SeedDemoData() error {
	seller, err := d.Register("demo-seller", "seller@example.com")
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	lots := []models.NewAuction{
		{Name: "Vintage camera", Description: "35mm rangefinder, working shutter", StartingPrice: 100, ReservePrice: 250, Duration: 2 * time.Hour},
		{Name: "Oak bookshelf", Description: "Solid oak, five shelves", StartingPrice: 200, ReservePrice: 200, Duration: 24 * time.Hour},
		{Name: "Signed poster", Description: "Concert poster with signatures", StartingPrice: 150, ReservePrice: 400, Duration: 30 * time.Minute},
	}
	for _, lot := range lots {
		if _, err := d.CreateAuction(seller.UserID, lot); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
}
