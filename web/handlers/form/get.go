package form

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/utils"
	"securityscan.com/securityscan/web/common"
)

func (ep *Endpoint) All(c *gin.Context) {
	var forms []model.Form
	if err := ep.base.DB().Find(&forms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	dir, err := loadDirectory(ep.base.DB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	dtos := utils.Map(forms, dir.decorateForm)
	c.JSON(http.StatusOK, common.NewMessageResponse("All forms fetched successfully!", dtos))
}

func (ep *Endpoint) Get(c *gin.Context) {
	formID := c.Param("formId")

	var form model.Form
	if err := ep.base.DB().First(&form, "id = ?", formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, common.NewErrorResponse("Form not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Form fetched successfully!", form))
}
