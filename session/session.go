// Package session holds the typed per-browser session state: the
// authenticated user identity plus the in-progress cart. State lives
// server-side in the session store; the cookie only carries the signed
// session ID.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const stateKey = "state"

// State is everything a browser session holds. UserID zero means anonymous.
// Cart is an ordered list of product IDs; duplicates are allowed and each
// add-to-cart appends.
type State struct {
	UserID   uint
	Username string
	Cart     []uint
}

func init() {
	gob.Register(State{})
}

// LoggedIn reports whether the session carries an authenticated user.
func (s State) LoggedIn() bool {
	return s.UserID != 0
}

// Get returns the session state for the current request, or a zero State
// when the browser has no session yet.
func Get(c *gin.Context) State {
	if v := sessions.Default(c).Get(stateKey); v != nil {
		if st, ok := v.(State); ok {
			return st
		}
	}
	return State{}
}

// Save writes the state back to the session store. Concurrent requests from
// the same browser session are last-write-wins; the cart is not merged.
func Save(c *gin.Context, st State) error {
	s := sessions.Default(c)
	s.Set(stateKey, st)
	return s.Save()
}
