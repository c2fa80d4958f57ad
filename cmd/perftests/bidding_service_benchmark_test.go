package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"auction-engine/internal/marketplace"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

func init() {
	// keep benchmark output readable
	_ = utils.SetLevel("error")
}

// newMarket creates a directory with a seller and numBidders funded bidders
func newMarket(b *testing.B, numBidders int) (*marketplace.Directory, string, []string) {
	b.Helper()

	directory := marketplace.NewDirectory(repository.NewMemoryRepo(), marketplace.WithInitialBalance(1e12))

	seller, err := directory.Register("bench-seller", "")
	if err != nil {
		b.Fatalf("failed to register seller: %v", err)
	}

	bidders := make([]string, numBidders)
	for i := range bidders {
		u, err := directory.Register(fmt.Sprintf("bidder_%d", i), "")
		if err != nil {
			b.Fatalf("failed to register bidder: %v", err)
		}
		bidders[i] = u.UserID
	}
	return directory, seller.UserID, bidders
}

func newAuction(b *testing.B, directory *marketplace.Directory, sellerID, name string) string {
	b.Helper()

	view, err := directory.CreateAuction(sellerID, model.NewAuction{
		Name:          name,
		Description:   "benchmark lot",
		StartingPrice: 50,
		ReservePrice:  100,
		Duration:      time.Hour,
	})
	if err != nil {
		b.Fatalf("failed to create auction: %v", err)
	}
	return view.Item.ItemID
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	directory, seller, bidders := newMarket(b, 64)

	auctionIDs := make([]string, b.N)
	for i := range auctionIDs {
		auctionIDs[i] = newAuction(b, directory, seller, fmt.Sprintf("Low-Contention Lot %d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidAmount := float64(51 + rand.Intn(100))
		if _, err := directory.PlaceBid(bidders[i%len(bidders)], auctionIDs[i], bidAmount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	directory, seller, bidders := newMarket(b, 256)
	auctionID := newAuction(b, directory, seller, "High-Contention Lot")

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := bidders[rnd.Intn(len(bidders))]
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			// losing a race to a higher bid is expected here
			_, _ = directory.PlaceBid(userID, auctionID, float64(nextBid))
		}
	})
}

// Benchmark 3: WinningBid - Concurrent Readers on a Shared Auction
func Benchmark_WinningBid_ConcurrentSharedAuction(b *testing.B) {
	directory, seller, bidders := newMarket(b, 100)
	auctionID := newAuction(b, directory, seller, "Read-Heavy Lot")

	for j, userID := range bidders {
		if _, err := directory.PlaceBid(userID, auctionID, float64(51+j)); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := directory.WinningBid(auctionID); err != nil {
				b.Fatalf("failed to get winning bid: %v", err)
			}
		}
	})
}

// Benchmark 4: Mixed Workload (bids, leaderboard reads, snapshots)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	directory, seller, bidders := newMarket(b, 128)
	auctionID := newAuction(b, directory, seller, "Mixed Lot")

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	// Ratio: 30% writers, 40% leaderboard, 30% snapshot
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			switch op := rnd.Intn(10); {
			case op < 3:
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = directory.PlaceBid(bidders[rnd.Intn(len(bidders))], auctionID, float64(nextBid))
			case op < 7:
				_, _ = directory.TopBidders(auctionID, 5)
			default:
				_, _ = directory.GetAuction(auctionID)
			}
		}
	})
}

// Benchmark 5: EndAuction settling many sold auctions
func Benchmark_EndAuction_Sold(b *testing.B) {
	directory, seller, bidders := newMarket(b, 16)

	auctionIDs := make([]string, b.N)
	for i := range auctionIDs {
		auctionIDs[i] = newAuction(b, directory, seller, fmt.Sprintf("Settlement Lot %d", i))
		if _, err := directory.PlaceBid(bidders[i%len(bidders)], auctionIDs[i], 150); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		outcome, err := directory.EndAuction(auctionIDs[i])
		if err != nil {
			b.Fatalf("failed to end auction: %v", err)
		}
		if !outcome.Sold() {
			b.Fatalf("auction %s unexpectedly unsold: %s", auctionIDs[i], outcome.Reason)
		}
	}
}
