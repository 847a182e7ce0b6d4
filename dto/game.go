package dto

// CardView 发给前端的牌面数据，Id 形如 "JHearts"
type CardView struct {
	ID   string `json:"id"`
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type PlayedCardView struct {
	PlayerPosition int      `json:"playerPosition"`
	Card           CardView `json:"card"`
}

type PlayerPublicView struct {
	Name       string `json:"name"`
	Position   int    `json:"position"`
	Team       int    `json:"team"`
	HandCount  int    `json:"handCount"`
	IsYou      bool   `json:"isYou"`
	CurrentBid *int   `json:"currentBid"`
	HasPassed  bool   `json:"hasPassed"`
}

// PersonalizedState 按观看者视角构建的房间状态。
// TrumpSuit 只在已亮主、或观看者是庄家时才带值，其余情况必须为空。
type PersonalizedState struct {
	RoomID                       string             `json:"roomId"`
	Phase                        string             `json:"phase"`
	Players                      []PlayerPublicView `json:"players"`
	CurrentBidderPosition        int                `json:"currentBidderPosition"`
	ContractorPosition           int                `json:"contractorPosition"`
	ContractorBid                int                `json:"contractorBid"`
	IsDoubled                    bool               `json:"isDoubled"`
	TrumpSuit                    string             `json:"trumpSuit,omitempty"`
	TrumpRevealed                bool               `json:"trumpRevealed"`
	YourHand                     []CardView         `json:"yourHand"`
	CurrentPlayerPosition        int                `json:"currentPlayerPosition"`
	CurrentTrick                 []PlayedCardView   `json:"currentTrick"`
	Team1Points                  int                `json:"team1Points"`
	Team2Points                  int                `json:"team2Points"`
	HasTrumpMarriage             bool               `json:"hasTrumpMarriage"`
	OpposingTeamHasTrumpMarriage bool               `json:"opposingTeamHasTrumpMarriage"`
	WinMessage                   string             `json:"winMessage,omitempty"`
	Team1RoundsWon               int                `json:"team1RoundsWon"`
	Team2RoundsWon               int                `json:"team2RoundsWon"`
	MatchWinner                  int                `json:"matchWinner"`
}

// websocket 消息的 payload 结构（经 mapstructure 解码）

type PlaceBidPayload struct {
	Bid  int  `json:"bid"`
	Pass bool `json:"pass"`
}

type SelectTeamPayload struct {
	Team int `json:"team"`
}

type DoubleChallengePayload struct {
	Accept bool `json:"accept"`
}

type ChooseTrumpPayload struct {
	// 四种花色之一，或 "auto"（由牌堆定主）
	Choice string `json:"choice"`
}

type PlayCardPayload struct {
	CardID string `json:"cardId"`
}

type ChatPayload struct {
	Message string `json:"message"`
}
