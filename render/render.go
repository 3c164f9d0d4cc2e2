// Package render models a handler outcome as a tagged result: either a
// templated page or a bare plain-text message. Handlers build the result and
// the transport decides the final encoding when Write runs.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type kind int

const (
	kindPage kind = iota
	kindText
)

type Result struct {
	kind   kind
	status int
	page   string
	data   gin.H
	text   string
}

// Page renders the named template with data.
func Page(status int, page string, data gin.H) Result {
	return Result{kind: kindPage, status: status, page: page, data: data}
}

// PlainText answers with a bare message, no template. Used for inline
// validation errors (duplicate email, bad credentials).
func PlainText(status int, msg string) Result {
	return Result{kind: kindText, status: status, text: msg}
}

// Write encodes the result onto the response.
func (r Result) Write(c *gin.Context) {
	switch r.kind {
	case kindText:
		c.String(r.status, r.text)
	default:
		status := r.status
		if status == 0 {
			status = http.StatusOK
		}
		c.HTML(status, r.page, r.data)
	}
}
