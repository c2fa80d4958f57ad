package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"auction-engine/internal/marketplace"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumUsers        int
	NumAuctions     int
	ReadRatio       int
	MaxBidIncrement int
	Burst           bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()

	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupMarket creates a directory with funded bidders and open auctions
func setupMarket(b *testing.B, s LoadScenario) (*marketplace.Directory, []string, []string) {
	directory, seller, bidders := newMarket(b, s.NumUsers)

	auctionIDs := make([]string, s.NumAuctions)
	for i := range auctionIDs {
		auctionIDs[i] = newAuction(b, directory, seller, fmt.Sprintf("load_lot_%d", i))
	}
	return directory, bidders, auctionIDs
}

// Benchmark_Load_AuctionEngine runs multiple scenarios
func Benchmark_Load_AuctionEngine(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 0, 50, false},
		{"High-Contention-WriteHeavy", 500, 10, 0, 20, false},
		{"Mixed-Workload", 300, 50, 7, 30, false},
		{"ReadHeavy", 200, 50, 9, 20, false},
		{"Edge-Case-SingleAuction", 100, 1, 5, 10, false},
		{"Peak-Burst", 500, 50, 0, 20, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	directory, bidders, auctionIDs := setupMarket(b, s)

	var totalOps, successfulBids, rejectedBids, totalReads int64
	auctionSuccess := make([]int64, s.NumAuctions)
	metrics := &OperationMetrics{}

	b.ResetTimer()
	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			idx := rnd.Intn(s.NumAuctions)
			auctionID := auctionIDs[idx]
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				// no bids yet is a normal answer
				_, _ = directory.WinningBid(auctionID)
				atomic.AddInt64(&totalReads, 1)
			} else {
				bidAmount := float64(51 + rnd.Intn(s.MaxBidIncrement*10))
				userID := bidders[rnd.Intn(len(bidders))]
				if _, err := directory.PlaceBid(userID, auctionID, bidAmount); err != nil {
					atomic.AddInt64(&rejectedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
					atomic.AddInt64(&auctionSuccess[idx], 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Accepted Bids: %d | Rejected Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulBids, rejectedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	// the engine must never accept a bid that does not beat the one before it
	for _, id := range auctionIDs {
		history, err := directory.BidHistory(id, false)
		if err != nil {
			b.Fatalf("bid history: %v", err)
		}
		for i := 1; i < len(history); i++ {
			if history[i].Amount <= history[i-1].Amount {
				b.Fatalf("auction %s accepted non-increasing bid %.2f after %.2f", id, history[i].Amount, history[i-1].Amount)
			}
		}
	}
}
