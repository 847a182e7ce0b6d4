package entities

// RoomInfo Redis 中 room:{id}:info 哈希对应的结构
type RoomInfo struct {
	MaxPlayers int    `json:"maxPlayers"`
	GameStatus string `json:"gameStatus"`
	CreatedAt  int64  `json:"createdAt"`
	CreatorID  string `json:"creatorId"`
}
