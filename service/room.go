package service

import (
	"fmt"
	"strings"
	"time"

	"game29/dto"
	"game29/engine"
	"game29/entities"
	"game29/logger"
	"game29/repository"
	"game29/utils"
	"game29/ws"

	"github.com/google/uuid"
)

// RoomService 房间生命周期：创建、列表、清理。
// 牌局注册表和连接中枢从外部注入。
type RoomService struct {
	registry *engine.Registry
	hub      *ws.Hub
}

func NewRoomService(registry *engine.Registry, hub *ws.Hub) *RoomService {
	return &RoomService{registry: registry, hub: hub}
}

// CreateRoom 生成唯一房间号并初始化房间信息
func (s *RoomService) CreateRoom(params dto.CreateRoomRequest) (string, error) {
	rdb := repository.Rdb

	// 生成唯一 Room ID（8位）
	uuidStr := uuid.New().String()
	roomID := strings.ReplaceAll(uuidStr, "-", "")[:8]

	err := ws.SetRoomInfo(rdb, roomID, entities.RoomInfo{
		MaxPlayers: 4,
		GameStatus: "Waiting",
		CreatedAt:  time.Now().Unix(),
		CreatorID:  params.PlayerName,
	})
	if err != nil {
		return "", fmt.Errorf("初始化房间信息失败: %w", err)
	}

	s.registry.GetOrCreate(roomID)
	logger.Sugar.Infof("✅ 房间创建成功: %s", roomID)
	return roomID, nil
}

// GetRoomList 返回所有活跃房间的摘要
func (s *RoomService) GetRoomList() ([]dto.RoomSummary, error) {
	var rooms []dto.RoomSummary
	for _, game := range s.registry.All() {
		summary := game.Summary()
		summary.PlayerNames = utils.SafeSlice(summary.PlayerNames, 4)
		rooms = append(rooms, summary)
	}
	return rooms, nil
}

// GetRoomSummary 查单个房间，不存在时返回 false（不报错）
func (s *RoomService) GetRoomSummary(roomID string) (dto.RoomSummary, bool) {
	game := s.registry.Get(roomID)
	if game == nil {
		return dto.RoomSummary{}, false
	}
	return game.Summary(), true
}

// ClearRoom 删除牌局、断开连接，并清掉 Redis 里房间相关的所有 key
func (s *RoomService) ClearRoom(params dto.ClearRoomRequest) error {
	ctx := repository.Ctx
	rdb := repository.Rdb
	roomID := params.RoomID

	s.registry.Delete(roomID)
	s.hub.RemoveRoom(roomID)

	// 用 SCAN 查找所有以 room:{RoomID}: 开头的 key
	prefix := fmt.Sprintf("room:%s:", roomID)
	var cursor uint64
	var keysToDelete []string

	for {
		keys, cur, err := rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描房间相关 key 失败: %w", err)
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = cur
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) > 0 {
		if _, err := rdb.Del(ctx, keysToDelete...).Result(); err != nil {
			return fmt.Errorf("删除房间相关 key 失败: %w", err)
		}
	}

	logger.Sugar.Infof("✅ 房间已清理: %s", roomID)
	return nil
}
