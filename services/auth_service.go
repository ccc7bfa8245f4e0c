package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/url"
	"strings"
	"time"

	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// AuthService holds the single admin credential and the session and theme
// records kept in the key-value store.
type AuthService struct {
	logger    *gecho.Logger
	cfg       *structs.Config
	cache     *CacheService
	adminHash string
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, cache *CacheService) (*AuthService, error) {
	hash, err := lib.HashPassword(cfg.Auth.AdminPassword, lib.DefaultArgonParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &AuthService{
		logger:    logger,
		cfg:       cfg,
		cache:     cache,
		adminHash: hash,
	}, nil
}

func sessionAuthKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s:authenticated", id)
}

func sessionUserKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s:user", id)
}

func themeKey(userID string) string {
	return "theme:" + userID
}

// Login moves a new session from anonymous through authenticating. It waits the
// configured delay, then checks the credentials. Any mismatch yields
// lib.ErrInvalidCredentials without saying which half was wrong.
func (as *AuthService) Login(ctx context.Context, req *structs.AuthRequest) (*structs.Session, error) {
	startTime := time.Now()
	session := &structs.Session{ID: uuid.New(), State: structs.SessionAuthenticating}

	if err := sleepCtx(ctx, as.cfg.Auth.LoginDelay); err != nil {
		return nil, err
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(as.cfg.Auth.AdminEmail)) == 1
	passwordOK, err := lib.VerifyPassword(req.Password, as.adminHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash", gecho.Field("error", err))
		return nil, err
	}

	if !emailOK || !passwordOK {
		as.logger.Debug("Invalid login attempt", gecho.Field("identifier", req.Email))
		return nil, lib.ErrInvalidCredentials
	}

	user := &structs.User{ID: as.cfg.Auth.AdminUserID, Email: as.cfg.Auth.AdminEmail}
	ttl := as.cfg.Auth.SessionExpiry

	if err := as.cache.Set(ctx, sessionAuthKey(session.ID), "true", ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	if err := setJSON(ctx, as.cache, sessionUserKey(session.ID), user, ttl); err != nil {
		return nil, fmt.Errorf("failed to store session user: %w", err)
	}

	session.State = structs.SessionAuthenticated
	session.IsAuthenticated = true
	session.User = user

	as.logger.Debug("User logged in successfully",
		gecho.Field("user_id", user.ID),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)
	return session, nil
}

// GenerateAccessToken signs a token that carries the session id as its jti.
func (as *AuthService) GenerateAccessToken(session *structs.Session) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(as.cfg.Auth.SessionExpiry)

	token, err := lib.SignToken(&structs.AuthClaims{
		Sub:   session.User.ID,
		Email: session.User.Email,
		Iat:   now,
		Exp:   exp,
		Jti:   session.ID,
	}, as.cfg.Auth.AccessTokenSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

// GetSession reads the stored session. A session that was logged out or has
// expired comes back anonymous.
func (as *AuthService) GetSession(ctx context.Context, id uuid.UUID) (*structs.Session, error) {
	anonymous := &structs.Session{ID: id, State: structs.SessionAnonymous}

	flag, err := as.cache.Get(ctx, sessionAuthKey(id))
	if err != nil {
		return nil, err
	}
	if flag != "true" {
		return anonymous, nil
	}

	user, err := getJSON[structs.User](ctx, as.cache, sessionUserKey(id))
	if err != nil {
		as.logger.Warn("Failed to read session user", gecho.Field("session_id", id), gecho.Field("error", err))
		return anonymous, nil
	}
	if user == nil {
		return anonymous, nil
	}

	return &structs.Session{
		ID:              id,
		State:           structs.SessionAuthenticated,
		IsAuthenticated: true,
		User:            user,
	}, nil
}

// Logout clears both session keys.
func (as *AuthService) Logout(ctx context.Context, id uuid.UUID) error {
	if err := as.cache.Delete(ctx, sessionAuthKey(id), sessionUserKey(id)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	as.logger.Debug("Session cleared", gecho.Field("session_id", id))
	return nil
}

func (as *AuthService) GetTheme(ctx context.Context, userID string) (structs.Theme, error) {
	val, err := as.cache.Get(ctx, themeKey(userID))
	if err != nil {
		return structs.ThemeLight, err
	}
	if structs.Theme(val) == structs.ThemeDark {
		return structs.ThemeDark, nil
	}
	return structs.ThemeLight, nil
}

func (as *AuthService) SetTheme(ctx context.Context, userID string, theme structs.Theme) error {
	return as.cache.Set(ctx, themeKey(userID), string(theme), 0)
}

func (as *AuthService) ToggleTheme(ctx context.Context, userID string) (structs.Theme, error) {
	current, err := as.GetTheme(ctx, userID)
	if err != nil {
		return current, err
	}

	next := structs.ThemeDark
	if current == structs.ThemeDark {
		next = structs.ThemeLight
	}
	return next, as.SetTheme(ctx, userID, next)
}

// RedirectTarget returns from when it is a local path other than the login
// page itself, otherwise "/".
func RedirectTarget(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return "/"
	}
	u, err := url.Parse(from)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	if u.Path == "/login" {
		return "/"
	}
	return from
}

// sleepCtx waits d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
