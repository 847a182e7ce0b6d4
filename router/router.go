package router

import (
	"game29/controller"
	"game29/middleware"
	"game29/ws"

	"github.com/gin-gonic/gin"
)

func InitRouter(r *gin.Engine, ctrl *controller.RoomController, hub *ws.Hub) {
	// 房间接口路由
	api := r.Group("/room")
	{
		api.POST("/create", ctrl.CreateRoom)
		api.GET("/list", ctrl.GetRoomList)
		api.GET("/:roomID", ctrl.GetRoomInfo)
		api.POST("/clear", middleware.AuthMiddleware(), ctrl.ClearRoom)
	}

	// WebSocket 路由
	r.GET("/ws", hub.HandleWebSocket)
}
