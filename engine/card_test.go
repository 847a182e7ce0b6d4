package engine

import "testing"

func TestRankPowerOrder(t *testing.T) {
	// J > 9 > A > 10 > K > Q > 8 > 7，强度 8 递减到 1
	order := []Rank{RankJ, Rank9, RankA, Rank10, RankK, RankQ, Rank8, Rank7}
	for i, r := range order {
		want := 8 - i
		if r.Power() != want {
			t.Fatalf("rank %s power expected %d got %d", r, want, r.Power())
		}
	}
}

func TestRankPoints(t *testing.T) {
	cases := map[Rank]int{
		RankJ:  3,
		Rank9:  2,
		RankA:  1,
		Rank10: 1,
		RankK:  0,
		RankQ:  0,
		Rank8:  0,
		Rank7:  0,
	}
	for r, want := range cases {
		if r.Points() != want {
			t.Fatalf("rank %s points expected %d got %d", r, want, r.Points())
		}
	}
}

func TestDeckTotalPoints(t *testing.T) {
	total := 0
	for _, c := range NewDeck() {
		total += c.Rank.Points()
	}
	if total != 28 {
		t.Fatalf("deck total points expected 28 got %d", total)
	}
}

func TestCardID(t *testing.T) {
	c := Card{Suit: SuitHearts, Rank: RankJ}
	if c.ID() != "JHearts" {
		t.Fatalf("card id expected JHearts got %s", c.ID())
	}
	c = Card{Suit: SuitSpades, Rank: Rank10}
	if c.ID() != "10Spades" {
		t.Fatalf("card id expected 10Spades got %s", c.ID())
	}
}

func TestParseSuit(t *testing.T) {
	s, ok := ParseSuit("Diamonds")
	if !ok || s != SuitDiamonds {
		t.Fatalf("expected Diamonds to parse")
	}
	if _, ok := ParseSuit("Stars"); ok {
		t.Fatalf("expected unknown suit to fail")
	}
}
