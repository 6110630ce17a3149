package handlers

import (
	"crypto/subtle"
	"net/http"
	"net/url"

	"github.com/rohits-web03/chainnotes/internal/api/middleware"
	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/rohits-web03/chainnotes/internal/services"
	"github.com/rohits-web03/chainnotes/internal/utils"
)

const stateCookie = "oauth_state"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user"`
}

func (h *Handler) sameSite() http.SameSite {
	if h.secureCookies {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func (h *Handler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: h.sameSite(),
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: h.sameSite(),
	})
}

// Register godoc
// @Summary Create an account with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "Account"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload "Email already registered"
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.users.Register(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, AuthResponse{User: user})
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Description The token is returned in the body and set as an HttpOnly cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginInput true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} utils.Payload
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, token, err := h.users.Login(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setTokenCookie(w, token)
	utils.JSONResponse(w, http.StatusOK, AuthResponse{Token: token, User: user})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, middleware.TokenCookie)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{Message: "logged out"})
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Param redirect query string false "login or register"
// @Success 307
// @Failure 503 {object} utils.Payload
// @Router /api/v1/auth/google/login [get]
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		h.writeError(w, r, &services.UnavailableError{Feature: "google sign-in"})
		return
	}

	flow := r.URL.Query().Get("redirect")
	if flow != "register" {
		flow = "login"
	}

	state, err := GenerateState(map[string]string{"flow": flow})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback godoc
// @Summary Finish Google sign-in
// @Description Redirects to the frontend with the token in the URL fragment.
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307
// @Failure 400 {object} utils.Payload
// @Router /api/v1/auth/google/callback [get]
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		h.writeError(w, r, &services.UnavailableError{Feature: "google sign-in"})
		return
	}

	state := r.FormValue("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		utils.ErrorResponse(w, http.StatusBadRequest, "invalid oauth state")
		return
	}
	h.clearCookie(w, stateCookie)

	meta, err := DecodeState(state)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "invalid oauth state")
		return
	}

	identity, err := h.google.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		h.log.Warn(r.Context(), "google exchange failed", "error", err)
		utils.ErrorResponse(w, http.StatusUnauthorized, "google sign-in failed")
		return
	}

	_, token, err := h.users.LoginWithIdentity(r.Context(), *identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setTokenCookie(w, token)

	target := h.frontendURL + "/auth/callback?" + url.Values{"flow": {meta["flow"]}}.Encode() +
		"#token=" + url.QueryEscape(token)
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
