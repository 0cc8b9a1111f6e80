package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/config"
	"github.com/plotvista/plotvista/internal/fixture"
	"github.com/plotvista/plotvista/internal/repository"
	"github.com/plotvista/plotvista/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.  The seed
// credential is hashed once at construction; login verifies against
// that hash so the plaintext never sticks around for comparison.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo // nil when persistence is disabled
	seedHash string
}

// NewAuthHandler hashes the seed credential and, when a user repository
// is available, mirrors the seed account into the users table.
func NewAuthHandler(cfg config.Config, users *repository.UserRepo) (*AuthHandler, error) {
	hash, err := utils.HashPassword(cfg.SeedPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	h := &AuthHandler{Cfg: cfg, Users: users, seedHash: hash}
	if users != nil {
		seed := fixture.ManagerUser()
		seed.Username = cfg.SeedUsername
		seed.HashedPassword = hash
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := users.EnsureSeed(ctx, seed); err != nil {
			log.Printf("auth: seed user upsert failed: %v", err)
		}
	}
	return h, nil
}

// ----- DTOs -----

type loginReq struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /api/auth/login.  Credentials arrive form-encoded
// (OAuth2 password-flow convention kept for frontend compatibility).
// Only the seeded account can authenticate; everyone else gets 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	if req.Username != h.Cfg.SeedUsername || !utils.VerifyPassword(h.seedHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect username or password"})
	}

	principal := fixture.ManagerUser()
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, "1", string(principal.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: access.Token, TokenType: "bearer"})
}

// TestToken handles GET /api/auth/test-token behind JWTAuth.  A valid
// bearer resolves to the seeded manager principal.
func (h *AuthHandler) TestToken(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"user": fixture.ManagerUser()})
}
