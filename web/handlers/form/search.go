package form

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/model"
	"securityscan.com/securityscan/utils"
	"securityscan.com/securityscan/web/common"
)

func (ep *Endpoint) SearchRequests(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Search query is required"))
		return
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var forms []model.Form
	err := ep.base.DB().
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", pattern, pattern, pattern).
		Find(&forms).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if len(forms) == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No users found"))
		return
	}

	dir, err := loadDirectory(ep.base.DB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	dtos := utils.Map(forms, dir.decorateForm)
	c.JSON(http.StatusOK, common.NewSearchResponse(dtos, int64(len(dtos))))
}
