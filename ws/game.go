package ws

import (
	"encoding/json"
	"time"

	"game29/dto"
	"game29/logger"
	"game29/utils"

	"github.com/gorilla/websocket"
)

type messageHandler func(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{})

var messageHandlers = map[string]messageHandler{
	"select_team":    handleSelectTeamMessage,
	"start_game":     handleStartGameMessage,
	"place_bid":      handlePlaceBidMessage,
	"respond_double": handleRespondDoubleMessage,
	"choose_trump":   handleChooseTrumpMessage,
	"play_card":      handlePlayCardMessage,
	"resolve_trick":  handleResolveTrickMessage,
	"ask_trump":      handleAskTrumpMessage,
	"chat_message":   handleChatMessage,
	"request_state":  handleRequestStateMessage,
}

// listenMessages 持续监听客户端消息并分发处理，每条消息处理完后同步全房间状态
func (h *Hub) listenMessages(conn *websocket.Conn, roomID, playerID string) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.Sugar.Infof("读取消息失败: %v", err)
			break
		}
		msgMap := make(map[string]interface{})
		if err := json.Unmarshal(msg, &msgMap); err != nil {
			logger.Sugar.Infof("消息解析失败: %v", err)
			continue
		}
		if msgType, ok := msgMap["type"].(string); ok {
			if handler, found := messageHandlers[msgType]; found {
				handler(h, conn, roomID, playerID, msgMap)
			} else {
				logger.Sugar.Warnf("⚠️ 未知的消息类型: %s", msgType)
			}
		}
		h.broadcastToRoom(roomID)
	}
}

func handleSelectTeamMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	var payload dto.SelectTeamPayload
	if err := decodePayload(msgMap, &payload); err != nil {
		sendError(conn, "消息格式不正确")
		return
	}
	if err := game.SelectTeam(playerID, payload.Team); err != nil {
		sendError(conn, err.Error())
	}
}

func handleStartGameMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	if err := game.Start(); err != nil {
		sendError(conn, err.Error())
		return
	}
	logger.Sugar.Infof("✅ 房间 %s 开始新一轮", roomID)
}

func handlePlaceBidMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	var payload dto.PlaceBidPayload
	if err := decodePayload(msgMap, &payload); err != nil {
		sendError(conn, "消息格式不正确")
		return
	}
	var bid *int
	if !payload.Pass {
		bid = &payload.Bid
	}
	if err := game.PlaceBid(playerID, bid); err != nil {
		sendError(conn, err.Error())
	}
}

func handleRespondDoubleMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	var payload dto.DoubleChallengePayload
	if err := decodePayload(msgMap, &payload); err != nil {
		sendError(conn, "消息格式不正确")
		return
	}
	if err := game.RespondToDoubleChallenge(playerID, payload.Accept); err != nil {
		sendError(conn, err.Error())
	}
}

var trumpChoices = []string{"Hearts", "Diamonds", "Clubs", "Spades", "auto"}

func handleChooseTrumpMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	var payload dto.ChooseTrumpPayload
	if err := decodePayload(msgMap, &payload); err != nil || !utils.StringInSlice(payload.Choice, trumpChoices) {
		sendError(conn, "定主选项不合法")
		return
	}
	if err := game.ChooseTrump(playerID, payload.Choice); err != nil {
		sendError(conn, err.Error())
	}
}

func handlePlayCardMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	var payload dto.PlayCardPayload
	if err := decodePayload(msgMap, &payload); err != nil {
		sendError(conn, "消息格式不正确")
		return
	}
	if err := game.PlayCard(playerID, payload.CardID); err != nil {
		sendError(conn, err.Error())
	}
}

// handleResolveTrickMessage 多个客户端看到同一墩凑满时会各自发一次，
// 引擎内部保证只有第一次生效，这里对重复调用保持沉默。
func handleResolveTrickMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	game.ResolveCompleteTrick()
}

func handleAskTrumpMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	result := game.AskForTrump(playerID)
	switch {
	case result.Foul:
		// 犯规既是失败，又改变了牌局，必须通知全房间
		logger.Sugar.Warnf("⚠️ 房间 %s 玩家 %s 问主犯规", roomID, playerID)
		h.broadcastMessage(roomID, map[string]interface{}{
			"type":    "foul",
			"message": result.Message,
		})
	case result.Success:
		h.broadcastMessage(roomID, map[string]interface{}{
			"type":      "trump_asked",
			"trumpSuit": result.TrumpSuit,
		})
	default:
		sendError(conn, result.Message)
	}
}

func handleChatMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	game := h.registry.Get(roomID)
	if game == nil {
		return
	}
	var payload dto.ChatPayload
	if err := decodePayload(msgMap, &payload); err != nil || payload.Message == "" {
		return
	}
	h.broadcastMessage(roomID, map[string]interface{}{
		"type":       "chat",
		"playerName": game.PlayerName(playerID),
		"message":    payload.Message,
		"timestamp":  time.Now().Format("15:04"),
	})
}

func handleRequestStateMessage(h *Hub, conn *websocket.Conn, roomID, playerID string, msgMap map[string]interface{}) {
	// 状态总是在消息循环末尾统一广播，这里无需额外处理
}

// broadcastMessage 给房间内所有在线玩家发同一条消息（聊天、犯规、亮主事件）
func (h *Hub) broadcastMessage(roomID string, msg map[string]interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, pc := range h.rooms[roomID] {
		if !pc.Online {
			continue
		}
		if err := writeJSON(pc.Conn, msg); err != nil {
			logger.Sugar.Infof("广播失败: %s", pc.PlayerID)
		}
	}
}
