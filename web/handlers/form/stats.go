package form

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/web/common"
)

func (ep *Endpoint) RequestRegistrationCounts(c *gin.Context) {
	counts, err := core.RequestRegistrationCounts(ep.base.DB(), time.Now())
	if err != nil {
		writeCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(counts))
}

func (ep *Endpoint) TodayVisitors(c *gin.Context) {
	count, err := core.TodayVisitorCount(ep.base.DB(), time.Now())
	if err != nil {
		writeCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"todayVisitors": count}))
}

func (ep *Endpoint) Stats(c *gin.Context) {
	dayCounts, monthCounts, err := core.DayAndMonthWiseCounts(ep.base.DB(), time.Now())
	if err != nil {
		writeCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"dayCounts":   dayCounts,
		"monthCounts": monthCounts,
	}))
}
