package logger

import (
	"log"

	"go.uber.org/zap"
)

var Sugar *zap.SugaredLogger

func Init() {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	zap.ReplaceGlobals(l)
	Sugar = l.Sugar()
}
