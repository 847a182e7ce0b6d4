package engine

import (
	"sort"
	"sync"

	"golang.org/x/exp/rand"
)

// Registry 房间号到牌局的并发安全映射。
// 作为显式对象注入到各处使用，不做全局变量。
type Registry struct {
	mu     sync.RWMutex
	games  map[string]*Game
	newRNG func() *rand.Rand
}

// Option 用于测试时替换随机源
type Option func(*Registry)

func WithRNG(newRNG func() *rand.Rand) Option {
	return func(r *Registry) { r.newRNG = newRNG }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		games:  make(map[string]*Game),
		newRNG: func() *rand.Rand { return nil },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrCreate 查找房间，不存在则创建
func (r *Registry) GetOrCreate(roomID string) *Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.games[roomID]; ok {
		return g
	}
	g := NewGame(roomID, r.newRNG())
	r.games[roomID] = g
	return g
}

// Get 查找房间，不存在返回 nil（调用方按空结果处理，不报错）
func (r *Registry) Get(roomID string) *Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.games[roomID]
}

func (r *Registry) Delete(roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, roomID)
}

// All 返回全部牌局，按房间号排序保证列表稳定
func (r *Registry) All() []*Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*Game, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].RoomID < games[j].RoomID })
	return games
}
