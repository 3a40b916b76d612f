package controllers

import (
	"encoding/json"
	"net/http"

	"plantnet/utils"
)

// AuthController issues and clears the session cookie
type AuthController struct {
	Production bool
}

// NewAuthController creates a new AuthController
func NewAuthController(production bool) *AuthController {
	return &AuthController{Production: production}
}

func (ac *AuthController) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if ac.Production {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ac.Production,
		SameSite: sameSite,
	}
}

// IssueToken signs a 365-day session token for the posted email and
// sets it as an HTTP-only cookie
func (ac *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateJWT(body.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, ac.cookie(token, int(utils.TokenLifetime.Seconds())))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Logout clears the session cookie
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, ac.cookie("", -1))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
