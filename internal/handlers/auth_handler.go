package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/andersonfbarbosa/barber-booking-api/internal/config"
	"github.com/andersonfbarbosa/barber-booking-api/internal/httperr"
	"github.com/andersonfbarbosa/barber-booking-api/internal/middleware"
	"github.com/andersonfbarbosa/barber-booking-api/internal/models"
	"github.com/andersonfbarbosa/barber-booking-api/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=4"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Name        string `json:"name" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=4"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, senha e telefone são obrigatórios.")
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.User{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "name_already_exists", "Já existe um cadastro com esse nome. Sugestão: cadastre um apelido.")
		return
	}

	var email *string
	if req.Email != "" {
		normalized := strings.ToLower(strings.TrimSpace(req.Email))

		if !validators.IsEmailDomainValid(normalized) {
			httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
			return
		}

		h.db.Model(&models.User{}).Where("email = ?", normalized).Count(&count)
		if count > 0 {
			httperr.Conflict(c, "email_already_exists", "Este e-mail já está cadastrado.")
			return
		}

		email = &normalized
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao registrar.")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsDuplicateKey(err) {
			httperr.Conflict(c, "name_already_exists", "Já existe um cadastro com esse nome.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao registrar.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Usuário cadastrado com sucesso!"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome de usuário e senha são obrigatórios.")
		return
	}

	var user models.User
	if err := h.db.
		Where("LOWER(name) = LOWER(?)", req.Name).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	h.setAuthCookie(c, token, int(tokenTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login bem-sucedido!",
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		},
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// cookie vazio com maxAge negativo → navegador descarta na hora
	h.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout bem-sucedido"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome de usuário e nova senha são obrigatórios.")
		return
	}

	var user models.User
	if err := h.db.
		Where("LOWER(name) = LOWER(?)", req.Name).
		First(&user).Error; err != nil {

		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao redefinir a senha.")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "failed_to_reset_password", "Erro ao redefinir a senha.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida com sucesso!"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"name":    user.Name,
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", false, true)
}
