package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"webapps/internal/utils"
)

// The login demo checks submitted credentials against these fixed values.
// There is no account table; the whole app is a stateless form exercise.
const (
	demoEmail    = "admin@email.com"
	demoPassword = "12345678"

	sessionCookie = "session"
	sessionTTL    = 30 * time.Minute
)

// LoginHandler serves the login demo.  The demo password is held only as
// a bcrypt hash computed at startup, and a successful login additionally
// sets a short-lived signed session cookie.
type LoginHandler struct {
	secret       string
	passwordHash string
}

// NewLoginHandler constructs a LoginHandler, hashing the demo credential.
func NewLoginHandler(secret string) *LoginHandler {
	hash, err := utils.HashPassword(demoPassword, 10)
	if err != nil {
		panic("could not hash demo password: " + err.Error())
	}
	return &LoginHandler{secret: secret, passwordHash: hash}
}

// Home handles GET / and renders the landing page.
func (h *LoginHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// Form handles GET /login and renders an empty login form.
func (h *LoginHandler) Form(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", map[string]any{"Email": ""})
}

// Submit handles POST /login.  Validation failures re-render the form
// with per-field messages; validated credentials render either the
// success or the denied page.  Both outcomes are 200s: the page itself
// is the result.
func (h *LoginHandler) Submit(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	fields := map[string]any{"Email": email}
	if !validEmail(email) {
		fields["EmailError"] = "Please enter a valid email address"
	}
	if len(password) < 8 {
		fields["PasswordError"] = "Password needs to be at least be 8 characters long"
	}
	if fields["EmailError"] != nil || fields["PasswordError"] != nil {
		return c.Render(http.StatusBadRequest, "login.html", fields)
	}

	if email == demoEmail && utils.VerifyPassword(h.passwordHash, password) {
		if token, exp, err := utils.NewSessionToken(h.secret, email, sessionTTL); err == nil {
			c.SetCookie(&http.Cookie{
				Name:     sessionCookie,
				Value:    token,
				Expires:  exp,
				HttpOnly: true,
				Path:     "/",
			})
		}
		return c.Render(http.StatusOK, "success.html", nil)
	}
	return c.Render(http.StatusOK, "denied.html", nil)
}

// validEmail applies the same shallow shape check the form widget used:
// one "@" with a dot somewhere after it.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	rest := email[at+1:]
	dot := strings.Index(rest, ".")
	return dot > 0 && dot < len(rest)-1
}
