package ws

import (
	"fmt"
	"time"

	"game29/entities"
	"game29/repository"

	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"
)

func roomInfoKey(roomID string) string {
	return fmt.Sprintf("room:%s:info", roomID)
}

// SetRoomInfo 写入房间基础信息（Hash）
func SetRoomInfo(rdb *redis.Client, roomID string, info entities.RoomInfo) error {
	err := rdb.HSet(repository.Ctx, roomInfoKey(roomID), map[string]interface{}{
		"maxPlayers": info.MaxPlayers,
		"gameStatus": info.GameStatus,
		"createdAt":  info.CreatedAt,
		"creatorId":  info.CreatorID,
	}).Err()
	if err != nil {
		return fmt.Errorf("写入房间信息失败: %w", err)
	}
	return nil
}

// GetRoomInfo 读取房间基础信息
func GetRoomInfo(rdb *redis.Client, roomID string) (entities.RoomInfo, error) {
	var info entities.RoomInfo

	data, err := rdb.HGetAll(repository.Ctx, roomInfoKey(roomID)).Result()
	if err != nil {
		return info, fmt.Errorf("获取房间信息失败: %w", err)
	}
	if len(data) == 0 {
		return info, fmt.Errorf("房间信息为空")
	}

	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: stringToIntHookFunc(),
		Result:     &info,
		TagName:    "json",
	}
	decoder, _ := mapstructure.NewDecoder(decoderConfig)
	if err := decoder.Decode(data); err != nil {
		return info, fmt.Errorf("房间信息解析失败: %w", err)
	}
	return info, nil
}

// EnsureRoomInfo 房间信息不存在时初始化一份默认值
func EnsureRoomInfo(rdb *redis.Client, roomID, creatorID string) error {
	exists, err := rdb.Exists(repository.Ctx, roomInfoKey(roomID)).Result()
	if err != nil {
		return fmt.Errorf("检查房间信息失败: %w", err)
	}
	if exists > 0 {
		return nil
	}
	return SetRoomInfo(rdb, roomID, entities.RoomInfo{
		MaxPlayers: 4,
		GameStatus: "Waiting",
		CreatedAt:  time.Now().Unix(),
		CreatorID:  creatorID,
	})
}

// SetGameStatus 把牌局当前阶段同步进房间信息
func SetGameStatus(rdb *redis.Client, roomID, status string) error {
	if err := rdb.HSet(repository.Ctx, roomInfoKey(roomID), "gameStatus", status).Err(); err != nil {
		return fmt.Errorf("更新房间状态失败（roomID: %s，gameStatus: %s）: %w", roomID, status, err)
	}
	return nil
}

// MarkMatchRecorded 整场结果只归档一次，用 SETNX 抢占标记
func MarkMatchRecorded(rdb *redis.Client, roomID string) (bool, error) {
	key := fmt.Sprintf("room:%s:match_recorded", roomID)
	return rdb.SetNX(repository.Ctx, key, "1", 0).Result()
}
