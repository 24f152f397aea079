package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agroadvisor/internal/auth"
	"agroadvisor/internal/repository"
)

// Mobile numbers must arrive in E.164 form, matching the stored format.
var mobilePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

type registerRequest struct {
	Name       string `json:"name" binding:"required"`
	Mobile     string `json:"mobile" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	Age        int    `json:"age"`
	FarmerType string `json:"farmerType"`
	Location   string `json:"location"`
	Language   string `json:"language"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.Mobile = strings.TrimSpace(req.Mobile)
	if !mobilePattern.MatchString(req.Mobile) {
		badRequest(c, "mobile must be an E.164-style number")
		return
	}
	farmerType := strings.ToLower(strings.TrimSpace(req.FarmerType))
	switch farmerType {
	case "", "marginal", "small", "large":
	default:
		badRequest(c, "farmerType must be one of marginal, small, large")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), repository.CreateUserRequest{
		Name:         strings.TrimSpace(req.Name),
		Mobile:       req.Mobile,
		PasswordHash: hash,
		Age:          req.Age,
		FarmerType:   farmerType,
		Location:     strings.TrimSpace(req.Location),
		Language:     strings.TrimSpace(req.Language),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	token, expiresAt, err := h.issuer.Issue(user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.log.Info("user registered", zap.String("user_id", user.ID.String()))
	c.JSON(http.StatusCreated, gin.H{
		"user":      user,
		"token":     token,
		"expiresAt": expiresAt,
	})
}

type loginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, hash, err := h.users.FindByMobile(c.Request.Context(), strings.TrimSpace(req.Mobile))
	if err != nil || !auth.CheckPassword(hash, req.Password) {
		// Same response for unknown mobile and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":  "invalid_credentials",
			"error": "invalid mobile or password",
		})
		return
	}

	token, expiresAt, err := h.issuer.Issue(user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Logout blacklists the presented token until its natural expiry.
func (h *Handler) Logout(c *gin.Context) {
	raw, ok := c.Get(auth.ContextToken)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing token"})
		return
	}
	token := raw.(string)

	_, expiresAt, err := h.issuer.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "invalid token"})
		return
	}
	if err := h.tokens.Revoke(c.Request.Context(), token, expiresAt); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}
	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
