package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/events"
	"auction-engine/internal/marketplace"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testClock is a settable clock shared by the directory under test
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// TestEnv bundles a router wired to a fresh in-memory marketplace
type TestEnv struct {
	Router    *gin.Engine
	Directory *marketplace.Directory
	Hub       *events.Hub
	Clock     *testClock
}

// SetupTestRouter initializes the router with an in-memory account store for integration testing.
func SetupTestRouter() *TestEnv {
	gin.SetMode(gin.TestMode)

	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	repo := repository.NewMemoryRepo()
	hub := events.NewHub(16)
	directory := marketplace.NewDirectory(repo,
		marketplace.WithClock(clock.Now),
		marketplace.WithPublisher(hub),
	)

	return &TestEnv{
		Router:    server.SetupRouter(directory, hub, 5),
		Directory: directory,
		Hub:       hub,
		Clock:     clock,
	}
}

// ExecuteRequestAndParse executes an HTTP request as userID and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(helpers.UserIDHeader, userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data returns the envelope's data object
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}

// RegisterUser registers username and tops up its balance, returning the user id
func RegisterUser(t *testing.T, env *TestEnv, username string, balance float64) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/users", "", helpers.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := Data(t, resp)["user_id"].(string)

	if balance > 0 {
		_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/users/me/balance", userID, helpers.AddBalanceRequest{Amount: balance})
		require.Equal(t, http.StatusOK, w.Code)
	}
	return userID
}

// CreateAuction lists a one-hour auction for sellerID and returns its id
func CreateAuction(t *testing.T, env *TestEnv, sellerID, name string, starting, reserve float64) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions", sellerID, helpers.CreateAuctionRequest{
		Name:            name,
		Description:     name + " in good condition",
		StartingPrice:   starting,
		ReservePrice:    reserve,
		DurationMinutes: 60,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return Data(t, resp)["auction_id"].(string)
}

// PlaceBid bids amount as userID and returns the response code
func PlaceBid(t *testing.T, env *TestEnv, userID, auctionID string, amount float64) int {
	t.Helper()

	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/"+auctionID+"/bids", userID, helpers.PlaceBidRequest{Amount: amount})
	return w.Code
}

// Profile fetches userID's profile
func Profile(t *testing.T, env *TestEnv, userID string) map[string]any {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/users/me", userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return Data(t, resp)
}
