package deptuser

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
	"securityscan.com/securityscan/utils"
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

	adminOnly := []gin.HandlerFunc{
		middlewares.Authentication(jwtSecret),
		middlewares.RequireRole("admin"),
	}

	r.POST("/signup", append(adminOnly, endpoint.Signup)...)
	r.POST("/login", endpoint.Login)
	r.POST("/forgot-password", endpoint.ForgotPassword)
	r.POST("/reset-password/:token", endpoint.ResetPassword)
	r.GET("/", endpoint.List)
	r.DELETE("/:userId", append(adminOnly, endpoint.Delete)...)
}

type SignupDTO struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
	Dept        string `json:"dept" binding:"required"`
}

func (ep *Endpoint) Signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var dept model.Department
	if err := ep.base.DB().First(&dept, "id = ?", dto.Dept).Error; err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Department not found"))
		return
	}

	hash, err := security.HashPassword(dto.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	user := model.DeptUser{
		ID:           uuid.NewString(),
		Name:         dto.Name,
		Email:        dto.Email,
		Password:     hash,
		PhoneNumber:  dto.PhoneNumber,
		DepartmentID: dept.ID,
	}
	if err := ep.base.DB().Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Email already registered"))
		return
	}

	c.JSON(http.StatusCreated, common.NewMessageResponse("Department user created successfully", user))
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

	var user model.DeptUser
	if err := ep.base.DB().First(&user, "email = ?", dto.Email).Error; err != nil ||
		!security.CheckPassword(user.Password, dto.Password) {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid email or password"))
		return
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, ep.jwtSecret, tokenTTLSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"token": token, "user": user}))
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

	var user model.DeptUser
	if err := ep.base.DB().First(&user, "email = ?", dto.Email).Error; err != nil {
		// Do not reveal whether the address is registered.
		c.JSON(http.StatusOK, common.NewMessageResponse("If the email is registered, a reset link has been sent", nil))
		return
	}

	token, err := security.NewResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	expiry := time.Now().Add(15 * time.Minute)
	err = ep.base.DB().Model(&user).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if ep.base.Mailer != nil {
		resetURL := fmt.Sprintf("%s/deptUsers/reset-password/%s", ep.base.Config.BaseURL, token)
		email := communication.BuildPasswordResetEmail(user.Email, resetURL)
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

	var user model.DeptUser
	err := ep.base.DB().
		First(&user, "reset_token = ? AND reset_token_expiry > ?", token, time.Now()).Error
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

	err = ep.base.DB().Model(&user).Updates(map[string]interface{}{
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

type DeptUserDTO struct {
	model.DeptUser
	DepartmentName string `json:"deptName"`
}

func (ep *Endpoint) List(c *gin.Context) {
	var users []model.DeptUser
	if err := ep.base.DB().Preload("Department").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	dtos := utils.Map(users, func(u model.DeptUser) DeptUserDTO {
		return DeptUserDTO{DeptUser: u, DepartmentName: u.Department.Name}
	})
	c.JSON(http.StatusOK, common.NewSuccessResponse(dtos))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	userID := c.Param("userId")

	res := ep.base.DB().Delete(&model.DeptUser{}, "id = ?", userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(res.Error.Error()))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("User not found"))
		return
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("User deleted successfully", nil))
}
