package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/security"
	"securityscan.com/securityscan/web/common"
	"securityscan.com/securityscan/web/middlewares"
)

const tokenTTLSeconds = 24 * 60 * 60

// Endpoint serves the security-desk accounts that operate the gate scanner.
type Endpoint struct {
	base      common.Handler
	jwtSecret string
}

func Register(r *gin.RouterGroup, base common.Handler, jwtSecret string) {
	endpoint := &Endpoint{base: base, jwtSecret: jwtSecret}

	r.POST("/signup",
		middlewares.Authentication(jwtSecret),
		middlewares.RequireRole("admin"),
		endpoint.Signup)
	r.POST("/login", endpoint.Login)
}

type SignupDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (ep *Endpoint) Signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	hash, err := security.HashPassword(dto.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	user := model.User{
		ID:       uuid.NewString(),
		Name:     dto.Name,
		Email:    dto.Email,
		Password: hash,
	}
	if err := ep.base.DB().Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Email already registered"))
		return
	}

	c.JSON(http.StatusCreated, common.NewMessageResponse("User created successfully", user))
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

	var user model.User
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
