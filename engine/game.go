package engine

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Player 一个座位上的玩家，Position 入座后固定
type Player struct {
	ID         string // 外部连接身份，仅用于寻址
	Name       string
	Position   int
	Team       int // 1 / 2，0 表示未选
	Hand       []Card
	CurrentBid *int
	HasPassed  bool
}

type PlayedCard struct {
	PlayerPosition int
	Card           Card
}

// Trick 一墩牌，凑满 4 张后结算
type Trick struct {
	Cards              []PlayedCard
	LeadSuit           *Suit
	LeadPlayerPosition int
}

// Game 一个房间的完整牌局状态。
// 所有修改都必须经过 mu，保证同一房间同一时刻只有一个命令在执行。
type Game struct {
	mu sync.Mutex

	RoomID  string
	Players []*Player
	Deck    []Card
	Phase   Phase

	CurrentBidderPosition int
	ContractorPosition    int
	ContractorBid         int
	IsDoubled             bool

	TrumpSuit              *Suit
	TrumpRevealed          bool
	PlayerWhoAskedForTrump int

	CurrentTrick          *Trick
	CurrentPlayerPosition int
	CompletedTricks       []*Trick

	Team1Points                  int
	Team2Points                  int
	HasTrumpMarriage             bool
	OpposingTeamHasTrumpMarriage bool

	Team1RoundsWon int
	Team2RoundsWon int
	WinMessage     string
	MatchWinner    int // 0 未定，1 / 2 为获胜队伍

	rng *rand.Rand
}

func NewGame(roomID string, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Game{
		RoomID:                 roomID,
		Phase:                  PhaseWaiting,
		ContractorPosition:     -1,
		PlayerWhoAskedForTrump: -1,
		rng:                    rng,
	}
}

func (g *Game) findPlayer(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// teamOfPosition 0、2 号位是一队，1、3 号位是二队
func teamOfPosition(position int) int {
	if position%2 == 0 {
		return 1
	}
	return 2
}

// Join 入座或重连。重名视为断线重连，只更新连接身份。
func (g *Game) Join(playerID, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p := g.findPlayer(playerID); p != nil {
		return nil
	}
	for _, p := range g.Players {
		if p.Name == name {
			p.ID = playerID
			return nil
		}
	}
	if len(g.Players) >= 4 {
		return errors.New("房间已满")
	}
	g.Players = append(g.Players, &Player{
		ID:       playerID,
		Name:     name,
		Position: len(g.Players),
	})
	return nil
}

// SelectTeam 开局前选队，只影响展示，记分始终按座位奇偶分队
func (g *Game) SelectTeam(playerID string, team int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhaseWaiting {
		return errors.New("游戏已开始，不能再选队")
	}
	if team != 1 && team != 2 {
		return errors.New("队伍编号不合法")
	}
	p := g.findPlayer(playerID)
	if p == nil {
		return errors.New("玩家不在房间中")
	}
	p.Team = team
	return nil
}

// Start 开始新一轮：洗牌、首批发牌、进入叫牌阶段。
// 上一场已分出胜负时，先清零两队轮数重新开赛。
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.Players) != 4 {
		return errors.New("需要 4 名玩家才能开始")
	}
	if g.Phase != PhaseWaiting && g.Phase != PhaseRoundEnd {
		return errors.New("牌局进行中，不能重新开始")
	}

	if g.MatchWinner != 0 {
		g.Team1RoundsWon = 0
		g.Team2RoundsWon = 0
		g.MatchWinner = 0
	}

	g.Deck = NewDeck()
	shuffleDeck(g.Deck, g.rng)
	g.dealFirstBatch()

	g.Phase = PhaseBidding
	// 首轮随机定首叫，之后由上一轮最后一墩的领出者首叫
	if g.CurrentTrick == nil {
		g.CurrentBidderPosition = g.rng.Intn(4)
	} else {
		g.CurrentBidderPosition = g.CurrentTrick.LeadPlayerPosition
	}

	g.TrumpSuit = nil
	g.TrumpRevealed = false
	g.PlayerWhoAskedForTrump = -1
	g.Team1Points = 0
	g.Team2Points = 0
	g.ContractorPosition = -1
	g.ContractorBid = 0
	g.IsDoubled = false
	g.HasTrumpMarriage = false
	g.OpposingTeamHasTrumpMarriage = false
	g.WinMessage = ""
	g.CompletedTricks = nil

	for _, p := range g.Players {
		p.CurrentBid = nil
		p.HasPassed = false
	}
	return nil
}
