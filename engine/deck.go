package engine

import "golang.org/x/exp/rand"

// NewDeck 生成标准 32 张牌
func NewDeck() []Card {
	deck := make([]Card, 0, 32)
	for _, s := range allSuits {
		for _, r := range allRanks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func shuffleDeck(deck []Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// dealFirstBatch 叫牌前每人先发 4 张（牌堆前 16 张）
func (g *Game) dealFirstBatch() {
	idx := 0
	for _, p := range g.Players {
		p.Hand = append([]Card(nil), g.Deck[idx:idx+4]...)
		idx += 4
	}
}

// dealSecondBatch 定主后每人再发 4 张（牌堆后 16 张）。
// 已在手牌里的牌不重复发。
func (g *Game) dealSecondBatch() {
	idx := 16
	for _, p := range g.Players {
		for _, card := range g.Deck[idx : idx+4] {
			if !handContains(p.Hand, card) {
				p.Hand = append(p.Hand, card)
			}
		}
		idx += 4
	}
}

func handContains(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}
