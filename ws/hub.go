package ws

import (
	"sync"

	"game29/dto"
	"game29/engine"
	"game29/logger"
	"game29/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub 管理所有房间的在线连接，并把房间号映射到牌局。
// 牌局注册表由外部构造后注入，Hub 自己只管连接。
type Hub struct {
	registry *engine.Registry

	mu    sync.Mutex
	rooms map[string][]dto.PlayerConn
}

func NewHub(registry *engine.Registry) *Hub {
	return &Hub{
		registry: registry,
		rooms:    make(map[string][]dto.PlayerConn),
	}
}

// Registry 暴露给 service 层做房间列表和清理
func (h *Hub) Registry() *engine.Registry {
	return h.registry
}

// 校验房间是否有空位，并将玩家加入房间（含断线重连）
func (h *Hub) validateAndJoinRoom(roomID, playerID string, conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	// 查找玩家是否已经在房间中（包括掉线状态）
	for i, pc := range h.rooms[roomID] {
		if pc.PlayerID == playerID {
			h.rooms[roomID][i].Conn = conn
			h.rooms[roomID][i].Online = true
			logger.Sugar.Infof("玩家 %s 重连成功", playerID)
			return true
		}
	}

	if len(h.rooms[roomID]) >= 4 {
		return false
	}

	h.rooms[roomID] = append(h.rooms[roomID], dto.PlayerConn{
		PlayerID: playerID,
		Conn:     conn,
		Online:   true,
	})
	return true
}

// 玩家断开连接后，从房间中标记该连接离线
func (h *Hub) cleanupOnDisconnect(roomID, playerID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, pc := range h.rooms[roomID] {
		if pc.Conn == conn && pc.PlayerID == playerID {
			h.rooms[roomID][i].Online = false
		}
	}
	logger.Sugar.Infof("玩家 %s 离开房间 %s", playerID, roomID)
}

// RemoveRoom 清房时移除全部连接
func (h *Hub) RemoveRoom(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, pc := range h.rooms[roomID] {
		pc.Conn.Close()
	}
	delete(h.rooms, roomID)
}

// broadcastToRoom 给房间里每个在线玩家推送各自视角的状态
func (h *Hub) broadcastToRoom(roomID string) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	newList := []dto.PlayerConn{}
	for _, pc := range h.rooms[roomID] {
		if !pc.Online {
			newList = append(newList, pc)
			continue
		}
		msg := map[string]interface{}{
			"type":  "sync",
			"state": game.PersonalizedState(pc.PlayerID),
		}
		if err := writeJSON(pc.Conn, msg); err != nil {
			logger.Sugar.Infof("广播失败，标记离线: %s", pc.PlayerID)
			pc.Conn.Close()
			pc.Online = false
		}
		newList = append(newList, pc)
	}
	h.rooms[roomID] = newList

	h.afterBroadcast(game)
}

// afterBroadcast 把当前阶段同步进 Redis，整场分出胜负时归档结果（只归档一次）
func (h *Hub) afterBroadcast(game *engine.Game) {
	summary := game.Summary()
	if err := SetGameStatus(repository.Rdb, summary.RoomID, summary.Phase); err != nil {
		logger.Sugar.Warnf("❌ 同步房间状态失败: %v", err)
	}

	state := game.PersonalizedState("")
	if state.MatchWinner == 0 {
		return
	}
	first, err := MarkMatchRecorded(repository.Rdb, summary.RoomID)
	if err != nil {
		logger.Sugar.Warnf("❌ 标记对局归档失败: %v", err)
		return
	}
	if !first {
		return
	}
	if err := repository.SaveMatchResult(summary.RoomID, state.MatchWinner,
		state.Team1RoundsWon, state.Team2RoundsWon); err != nil {
		logger.Sugar.Warnf("❌ 归档对局结果失败: %v", err)
	}
}

// 向单个客户端发送初始化消息（初始化自己的 playerId）
func sendInitMessage(conn *websocket.Conn, playerID string) {
	writeJSON(conn, map[string]string{
		"type":     "init",
		"playerId": playerID,
	})
}

func sendError(conn *websocket.Conn, message string) {
	writeJSON(conn, map[string]string{
		"type":    "error",
		"message": message,
	})
}

// 生成匿名玩家ID（使用 UUID）
func generateAnonymousPlayerID() string {
	return uuid.New().String()
}

// HandleWebSocket WebSocket 主入口（处理每个连接）
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgradeConnection(c)
	if err != nil {
		return
	}
	defer conn.Close()
	defer releaseWriteLock(conn)

	roomID := c.Query("roomId")
	if roomID == "" {
		logger.Sugar.Info("缺少 roomId")
		return
	}

	playerID := c.Query("userId")
	if playerID == "" {
		playerID = generateAnonymousPlayerID()
	}
	playerName := c.Query("name")
	if playerName == "" {
		suffix := playerID
		if len(suffix) > 4 {
			suffix = suffix[:4]
		}
		playerName = "玩家" + suffix
	}

	// 进入牌局（重名视为重连）
	game := h.registry.GetOrCreate(roomID)
	if err := game.Join(playerID, playerName); err != nil {
		sendError(conn, err.Error())
		return
	}
	if !h.validateAndJoinRoom(roomID, playerID, conn) {
		sendError(conn, "房间已满")
		return
	}
	defer h.cleanupOnDisconnect(roomID, playerID, conn)

	if err := EnsureRoomInfo(repository.Rdb, roomID, playerID); err != nil {
		logger.Sugar.Warnf("❌ 初始化房间信息失败: %v", err)
	}

	sendInitMessage(conn, playerID)
	logger.Sugar.Infof("玩家加入 room=%s，ID=%s，昵称=%s", roomID, playerID, playerName)

	h.broadcastToRoom(roomID)
	h.listenMessages(conn, roomID, playerID)
}
