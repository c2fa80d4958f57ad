package handler

import (
	"net/http"

	model "auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_user_handler.go -package=handler auction-engine/services/bidding/handler AccountService

type AccountService interface {
	Register(username, email string) (model.User, error)
	Login(username string) (model.User, error)
	AddBalance(userID string, amount float64) (model.User, error)
	Profile(userID string) (model.Profile, error)
}

type UserHandler struct {
	service AccountService
}

func NewUserHandler(service AccountService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterHandler handles POST /users
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req.Username, req.Email)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{"user_id": user.UserID})
}

// LoginHandler handles POST /sessions. The returned user_id must be sent in
// the X-User-ID header on later requests.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Login(req.Username)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "login successful")
}

// ProfileHandler handles GET /users/me
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)

	profile, err := h.service.Profile(userID)
	if err != nil {
		helpers.RespondError(c, "ProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}

// AddBalanceHandler handles POST /users/me/balance
func (h *UserHandler) AddBalanceHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)

	var req helpers.AddBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddBalanceHandler", err)
		return
	}

	user, err := h.service.AddBalance(userID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "AddBalanceHandler", err, map[string]any{"user_id": userID, "amount": req.Amount})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "balance added successfully")
	helpers.LogSuccess("AddBalanceHandler", "balance added successfully", map[string]any{
		"user_id": userID,
		"balance": user.Balance,
	})
}
