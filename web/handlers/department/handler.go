package department

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/web/common"
	"securityscan.com/securityscan/web/middlewares"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, base common.Handler, jwtSecret string) {
	endpoint := &Endpoint{base: base}

	r.GET("/", endpoint.List)
	r.POST("/create",
		middlewares.Authentication(jwtSecret),
		middlewares.RequireRole("admin"),
		endpoint.Create)
}

type CreateDTO struct {
	Name string `json:"name" binding:"required"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	identity := middlewares.CurrentIdentity(c)

	dept := model.Department{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		CreatedByID: identity.ID,
	}
	if err := ep.base.DB().Create(&dept).Error; err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Department already exists or could not be created"))
		return
	}

	c.JSON(http.StatusCreated, common.NewMessageResponse("Department created successfully", dept))
}

func (ep *Endpoint) List(c *gin.Context) {
	var departments []model.Department
	if err := ep.base.DB().Order("name").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(departments))
}
