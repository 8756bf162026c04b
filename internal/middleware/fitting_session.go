package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lahermandad/internal/domain/fitting"
)

const (
	FittingCookieName    = "lh_fitting"
	ctxKeyFittingSession = "fitting_session"
)

var ErrInvalidSession = errors.New("invalid fitting session cookie")

// SessionCodec signs session ids so a visitor cannot pick someone else's
// fitting room. Value format: id.base64(hmac(id)).
type SessionCodec struct {
	Secret []byte
	Secure bool
	MaxAge time.Duration
}

func (s *SessionCodec) Encode(id string) string {
	return id + "." + sign(s.Secret, id)
}

func (s *SessionCodec) Decode(v string) (string, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 || parts[0] == "" {
		return "", ErrInvalidSession
	}
	if !hmac.Equal([]byte(sign(s.Secret, parts[0])), []byte(parts[1])) {
		return "", ErrInvalidSession
	}
	return parts[0], nil
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

type fittingSession struct {
	reg    *fitting.Registry
	codec  *SessionCodec
	id     string
	known  bool
	issued bool
	room   *fitting.Room
}

func (s *fittingSession) issueCookie(c *gin.Context) {
	if s.issued {
		return
	}
	s.issued = true
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FittingCookieName, s.codec.Encode(s.id), int(s.codec.MaxAge.Seconds()), "/", "", s.codec.Secure, true)
}

// FittingSession resolves the visitor's fitting session from the signed
// cookie. Rooms are looked up, never created, here: read-only requests from
// cookieless clients leave the registry untouched. A valid cookie is
// refreshed on every request so it expires with the room.
func FittingSession(reg *fitting.Registry, codec *SessionCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &fittingSession{reg: reg, codec: codec}
		if raw, err := c.Cookie(FittingCookieName); err == nil && raw != "" {
			if decoded, err := codec.Decode(raw); err == nil {
				s.id = decoded
				s.known = true
			}
		}

		if s.known {
			s.room = reg.Peek(s.id)
			s.issueCookie(c)
		} else {
			s.id = fitting.NewSessionID()
		}

		c.Set(ctxKeyFittingSession, s)
		c.Next()
	}
}

func sessionOf(c *gin.Context) *fittingSession {
	v, ok := c.Get(ctxKeyFittingSession)
	if !ok {
		return nil
	}
	s, _ := v.(*fittingSession)
	return s
}

// FittingRoom returns the session's room, or nil when it has none yet.
func FittingRoom(c *gin.Context) *fitting.Room {
	if s := sessionOf(c); s != nil {
		return s.room
	}
	return nil
}

// OpenFittingRoom returns the session's room, creating it and issuing the
// session cookie when needed. Only handlers that put items in the room
// should call it.
func OpenFittingRoom(c *gin.Context) *fitting.Room {
	s := sessionOf(c)
	if s == nil {
		return nil
	}
	if s.room == nil {
		s.room = s.reg.Get(s.id)
	}
	s.issueCookie(c)
	return s.room
}

// DiscardFittingRoom drops the session's room from the registry.
func DiscardFittingRoom(c *gin.Context) {
	s := sessionOf(c)
	if s == nil || s.room == nil {
		return
	}
	s.reg.Discard(s.id)
	s.room = nil
}
