package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tehimas/warung-seblak/auth"
	"github.com/tehimas/warung-seblak/utils"
)

type AuthController struct {
	Verifier auth.Verifier
	Store    auth.SessionStore
}

func NewAuthController(verifier auth.Verifier, store auth.SessionStore) *AuthController {
	return &AuthController{Verifier: verifier, Store: store}
}

// Login memeriksa kredensial dan mengembalikan token sesi admin.
// Tidak ada lockout atau rate limit di sini selain limiter di router.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, ok := ac.Verifier.Verify(input.Username, input.Password)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.Username, user.FullName)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ac.Store.Save(token, user); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Admin login: %s", user.Username)

	utils.RespondJSON(c, http.StatusOK, "Login berhasil", gin.H{
		"token":     token,
		"username":  user.Username,
		"full_name": user.FullName,
	})
}

// Logout menghapus sesi tanpa syarat, apa pun kondisi token.
func (ac *AuthController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		if err := ac.Store.Clear(token); err != nil {
			utils.ErrorLogger.Printf("Error clearing session: %v", err)
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Logout berhasil", nil)
}

// Profile mengembalikan identitas admin dari sesi aktif.
func (ac *AuthController) Profile(c *gin.Context) {
	username, _ := c.Get("username")
	fullName, _ := c.Get("full_name")
	utils.RespondJSON(c, http.StatusOK, "Profil admin", gin.H{
		"username":  username,
		"full_name": fullName,
	})
}
