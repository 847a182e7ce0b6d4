package engine

// Suit 花色
type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

var allSuits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitClubs:
		return "Clubs"
	case SuitSpades:
		return "Spades"
	default:
		return "?"
	}
}

func (s Suit) Symbol() string {
	switch s {
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	case SuitSpades:
		return "♠"
	default:
		return "?"
	}
}

// ParseSuit 解析花色名称（"Hearts" 等）
func ParseSuit(name string) (Suit, bool) {
	for _, s := range allSuits {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// Rank 点数
type Rank int

const (
	Rank7 Rank = iota
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

var allRanks = []Rank{Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA}

func (r Rank) String() string {
	switch r {
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case Rank10:
		return "10"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return "?"
	}
}

// Points 计分点数：J=3 9=2 A=1 10=1，整副牌共 28 点
func (r Rank) Points() int {
	switch r {
	case RankJ:
		return 3
	case Rank9:
		return 2
	case RankA, Rank10:
		return 1
	default:
		return 0
	}
}

// Power 比牌大小：J > 9 > A > 10 > K > Q > 8 > 7
func (r Rank) Power() int {
	switch r {
	case RankJ:
		return 8
	case Rank9:
		return 7
	case RankA:
		return 6
	case Rank10:
		return 5
	case RankK:
		return 4
	case RankQ:
		return 3
	case Rank8:
		return 2
	case Rank7:
		return 1
	default:
		return 0
	}
}

// Card 不可变的牌值，(Suit, Rank) 即身份
type Card struct {
	Suit Suit
	Rank Rank
}

// ID 跨端引用用的牌面标识，如 "JHearts"
func (c Card) ID() string {
	return c.Rank.String() + c.Suit.String()
}
