package dto

import "github.com/gorilla/websocket"

// PlayerConn 房间内的玩家连接对象
type PlayerConn struct {
	PlayerID string          // 玩家ID
	Conn     *websocket.Conn // 连接对象
	Online   bool            // 是否在线
}

type RoomSummary struct {
	RoomID      string   `json:"roomId"`
	PlayerCount int      `json:"playerCount"`
	PlayerNames []string `json:"playerNames"`
	Phase       string   `json:"phase"`
	IsFull      bool     `json:"isFull"`
}

type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type CreateRoomResponse struct {
	RoomID string `json:"roomId" binding:"required"`
}

type ClearRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

type GetRoomList struct {
	Rooms []RoomSummary `json:"rooms"`
}
