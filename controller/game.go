package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (ctrl *RoomController) GetRoomInfo(c *gin.Context) {
	roomID := c.Param("roomID")

	summary, ok := ctrl.service.GetRoomSummary(roomID)
	if !ok {
		// 未知房间按空结果返回，不当作错误
		c.JSON(http.StatusOK, gin.H{
			"status_code": http.StatusOK,
			"data":        nil,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"data":        summary,
	})
}
