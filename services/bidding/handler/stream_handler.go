package handler

import (
	"net/http"
	"time"

	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AuctionLookup is the subset of the marketplace the stream needs
type AuctionLookup interface {
	GetAuction(auctionID string) (model.AuctionView, error)
}

// StreamHandler pushes bid.accepted and auction.settled events over a websocket
type StreamHandler struct {
	auctions AuctionLookup
	hub      *events.Hub
}

func NewStreamHandler(auctions AuctionLookup, hub *events.Hub) *StreamHandler {
	return &StreamHandler{auctions: auctions, hub: hub}
}

// Stream handles GET /auctions/:auction_id/stream
func (h *StreamHandler) Stream(c *gin.Context) {
	auctionID := c.Param("auction_id")

	// Subscribe before reading the view so a settlement that lands in between
	// is still delivered.
	sub := h.hub.Subscribe(auctionID)
	defer h.hub.Unsubscribe(sub)

	view, err := h.auctions.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "StreamHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written an HTTP error
		utils.Warn("StreamHandler: upgrade failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}
	defer conn.Close()

	utils.Info("StreamHandler: subscriber connected", map[string]any{
		"auction_id":  auctionID,
		"subscribers": h.hub.Subscribers(auctionID),
	})

	// A settled auction has nothing more to say.
	if view.Outcome != nil {
		h.writeFinal(conn, model.Event{
			Type:      model.EventAuctionSettled,
			AuctionID: auctionID,
			Outcome:   view.Outcome,
			At:        view.Outcome.SettledAt,
		})
		return
	}

	done := make(chan struct{})
	go readPump(conn, done)

	h.writePump(conn, sub, done)

	utils.Info("StreamHandler: subscriber disconnected", map[string]any{"auction_id": auctionID})
}

func (h *StreamHandler) writePump(conn *websocket.Conn, sub *events.Subscriber, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return

		case event, ok := <-sub.C:
			if !ok {
				return
			}
			if event.Type == model.EventAuctionSettled {
				h.writeFinal(conn, event)
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				utils.Warn("StreamHandler: write failed", map[string]any{"auction_id": event.AuctionID, "error": err.Error()})
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// writeFinal sends the settlement event followed by a normal close frame
func (h *StreamHandler) writeFinal(conn *websocket.Conn, event model.Event) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(event); err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "auction settled"))
}

// readPump discards client frames and closes done when the peer goes away
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
