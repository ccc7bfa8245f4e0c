package structs

import (
	"time"

	"github.com/google/uuid"
)

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

type AuthClaims struct {
	Sub   string    `json:"sub"`
	Email string    `json:"email"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	From     string `json:"from,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

// Session is the persisted record of whether an admin is signed in.
type Session struct {
	ID              uuid.UUID    `json:"-"`
	State           SessionState `json:"state"`
	IsAuthenticated bool         `json:"is_authenticated"`
	User            *User        `json:"user"`
}

type LoginResponse struct {
	User       *User  `json:"user"`
	RedirectTo string `json:"redirect_to"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type ThemeRequest struct {
	Theme Theme `json:"theme" validate:"required,oneof=light dark"`
}
