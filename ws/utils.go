package ws

import (
	"net/http"
	"reflect"
	"strconv"
	"sync"

	"game29/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// gorilla 的连接不允许并发写，所有写出口共用每连接一把的写锁
var connWriteLocks sync.Map

func writeJSON(conn *websocket.Conn, v interface{}) error {
	lock, _ := connWriteLocks.LoadOrStore(conn, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()
	return conn.WriteJSON(v)
}

// releaseWriteLock 连接关闭后回收对应的写锁
func releaseWriteLock(conn *websocket.Conn) {
	connWriteLocks.Delete(conn)
}

// 将 HTTP 请求升级为 WebSocket 连接
func upgradeConnection(c *gin.Context) (*websocket.Conn, error) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Sugar.Infof("WebSocket 升级失败: %v", err)
	}
	return conn, err
}

// 自定义 HookFunc，把字符串转换成 int
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && (to == reflect.Int || to == reflect.Int64) {
			return strconv.ParseInt(data.(string), 10, 64)
		}
		return data, nil
	}
}

// decodePayload 把客户端消息体解码成具体的 payload 结构
func decodePayload(msgMap map[string]interface{}, result interface{}) error {
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: stringToIntHookFunc(),
		Result:     result,
		TagName:    "json",
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(msgMap)
}
