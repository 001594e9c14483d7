package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"securityscan.com/securityscan/infrastructure/communication"
	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/security"
	"securityscan.com/securityscan/web/common"
	"securityscan.com/securityscan/web/middlewares"
)

const tokenTTLSeconds = 24 * 60 * 60

type Endpoint struct {
	base      common.Handler
	jwtSecret string
}

func Register(r *gin.RouterGroup, base common.Handler, jwtSecret string) {
	endpoint := &Endpoint{base: base, jwtSecret: jwtSecret}

	r.POST("/signup", endpoint.Signup)
	r.POST("/login", endpoint.Login)
	r.POST("/forgot-password", endpoint.ForgotPassword)
	r.POST("/reset-password/:token", endpoint.ResetPassword)
	r.GET("/me",
		middlewares.Authentication(jwtSecret),
		middlewares.RequireRole("admin"),
		endpoint.Me)
}

type SignupDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Signup is open only while no admin account exists. Afterwards new
// admins must be created by an authenticated admin.
func (ep *Endpoint) Signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var existing int64
	if err := ep.base.DB().Model(&model.Admin{}).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if existing > 0 {
		identity := authenticatedAdmin(c, ep.jwtSecret)
		if identity == nil {
			c.JSON(http.StatusForbidden, common.NewErrorResponse("Admin signup is restricted"))
			return
		}
	}

	hash, err := security.HashPassword(dto.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	admin := model.Admin{
		ID:       uuid.NewString(),
		Name:     dto.Name,
		Email:    dto.Email,
		Password: hash,
	}
	if err := ep.base.DB().Create(&admin).Error; err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Email already registered"))
		return
	}

	c.JSON(http.StatusCreated, common.NewMessageResponse("Admin created successfully", admin))
}

// authenticatedAdmin parses the bearer token directly because the
// signup route cannot sit behind the Authentication middleware.
func authenticatedAdmin(c *gin.Context, secret string) *security.Identity {
	header := c.GetHeader("Authorization")
	if len(header) < 8 || header[:7] != "Bearer " {
		return nil
	}
	claims, err := security.ParseIdentityToken(header[7:], secret)
	if err != nil || claims.Role != "admin" {
		return nil
	}
	return &claims.Identity
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ep *Endpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var admin model.Admin
	if err := ep.base.DB().First(&admin, "email = ?", dto.Email).Error; err != nil ||
		!security.CheckPassword(admin.Password, dto.Password) {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid email or password"))
		return
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	}, ep.jwtSecret, tokenTTLSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"token": token, "admin": admin}))
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,email"`
}

func (ep *Endpoint) ForgotPassword(c *gin.Context) {
	var dto ForgotPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var admin model.Admin
	if err := ep.base.DB().First(&admin, "email = ?", dto.Email).Error; err != nil {
		c.JSON(http.StatusOK, common.NewMessageResponse("If the email is registered, a reset link has been sent", nil))
		return
	}

	token, err := security.NewResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	expiry := time.Now().Add(15 * time.Minute)
	err = ep.base.DB().Model(&admin).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if ep.base.Mailer != nil {
		resetURL := fmt.Sprintf("%s/admin/reset-password/%s", ep.base.Config.BaseURL, token)
		email := communication.BuildPasswordResetEmail(admin.Email, resetURL)
		if err := ep.base.Mailer.Send(context.Background(), email); err != nil {
			log.Printf("failed to send reset email: %v", err)
		}
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("If the email is registered, a reset link has been sent", nil))
}

type ResetPasswordDTO struct {
	Password string `json:"password" binding:"required,min=8"`
}

func (ep *Endpoint) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var dto ResetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var admin model.Admin
	err := ep.base.DB().
		First(&admin, "reset_token = ? AND reset_token_expiry > ?", token, time.Now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid or expired reset token"))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	hash, err := security.HashPassword(dto.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	err = ep.base.DB().Model(&admin).Updates(map[string]interface{}{
		"password":           hash,
		"reset_token":        "",
		"reset_token_expiry": nil,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Password reset successfully", nil))
}

// Me returns the authenticated admin, used by the dashboard to
// validate a stored token on load.
func (ep *Endpoint) Me(c *gin.Context) {
	identity := middlewares.CurrentIdentity(c)

	var admin model.Admin
	if err := ep.base.DB().First(&admin, "id = ?", identity.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Admin not found"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(admin))
}
