package main

import (
	"os"
	"time"

	"game29/controller"
	"game29/engine"
	"game29/logger"
	"game29/repository"
	"game29/router"
	"game29/service"
	"game29/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger.Init()
	repository.InitRedis()
	repository.InitMySQL()

	registry := engine.NewRegistry()
	hub := ws.NewHub(registry)
	roomService := service.NewRoomService(registry, hub)
	roomController := controller.NewRoomController(roomService)

	r := gin.Default()

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r, roomController, hub)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8000"
	}
	r.Run(addr)
}
