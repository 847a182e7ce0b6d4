// redis.go
package repository

import (
	"context"
	"os"

	"game29/logger"

	"github.com/go-redis/redis/v8"
)

var (
	Rdb *redis.Client
	Ctx = context.Background()
)

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // 如果有密码，写在这里
		DB:       0,  // 默认使用 0 号数据库
	})

	_, err := Rdb.Ping(Ctx).Result()
	if err != nil {
		logger.Sugar.Fatalf("Redis 连接失败: %v", err)
	}
	logger.Sugar.Info("✅ Redis 连接成功")
}
