package engine

import (
	"strings"
	"testing"
)

func TestAskForTrumpWhileLeadingRejected(t *testing.T) {
	g := setupPlayingGame(t)
	playerAt(g, 0).Hand = []Card{{Suit: SuitSpades, Rank: Rank7}}

	result := g.AskForTrump(playerAt(g, 0).ID)
	if result.Success || result.Foul {
		t.Fatalf("expected plain rejection when asking while leading")
	}
	if g.TrumpRevealed {
		t.Fatalf("trump must stay concealed")
	}
}

func TestAskForTrumpFoul(t *testing.T) {
	g := setupPlayingGame(t)
	playerAt(g, 0).Hand = []Card{{Suit: SuitSpades, Rank: Rank7}}
	playerAt(g, 1).Hand = []Card{
		{Suit: SuitSpades, Rank: RankK},
		{Suit: SuitClubs, Rank: Rank8},
	}
	if err := g.PlayCard(playerAt(g, 0).ID, "7Spades"); err != nil {
		t.Fatalf("lead failed: %v", err)
	}

	// 手里还有黑桃却问主：犯规，本轮直接判给对方
	result := g.AskForTrump(playerAt(g, 1).ID)
	if !result.Foul || result.Success {
		t.Fatalf("expected foul result, got %+v", result)
	}
	if g.Phase != PhaseRoundEnd {
		t.Fatalf("expected RoundEnd after foul, got %s", g.Phase)
	}
	if g.Team1RoundsWon != 1 || g.Team2RoundsWon != 0 {
		t.Fatalf("round expected to go to team1, got %d/%d", g.Team1RoundsWon, g.Team2RoundsWon)
	}
	// 问主本身无效：主牌状态保持原样
	if g.TrumpRevealed {
		t.Fatalf("trump must stay concealed after foul")
	}
	if g.PlayerWhoAskedForTrump != -1 {
		t.Fatalf("foul must not record the asker")
	}
	if !strings.Contains(g.WinMessage, "犯规") {
		t.Fatalf("win message should describe the foul, got %q", g.WinMessage)
	}
}

func TestAskForTrumpFoulInDoubledRoundAwardsOneRound(t *testing.T) {
	g := setupPlayingGame(t)
	g.IsDoubled = true
	playerAt(g, 0).Hand = []Card{{Suit: SuitSpades, Rank: Rank7}}
	playerAt(g, 1).Hand = []Card{
		{Suit: SuitSpades, Rank: RankK},
		{Suit: SuitClubs, Rank: Rank8},
	}
	if err := g.PlayCard(playerAt(g, 0).ID, "7Spades"); err != nil {
		t.Fatalf("lead failed: %v", err)
	}

	result := g.AskForTrump(playerAt(g, 1).ID)
	if !result.Foul {
		t.Fatalf("expected foul result, got %+v", result)
	}
	// 犯规判负不吃加倍：只给对方 1 轮，不是 2 轮
	if g.Team1RoundsWon != 1 || g.Team2RoundsWon != 0 {
		t.Fatalf("doubled foul should award exactly 1 round, got %d/%d",
			g.Team1RoundsWon, g.Team2RoundsWon)
	}
}

func TestAskForTrumpValidRevealsAndChecksMarriages(t *testing.T) {
	g := setupPlayingGame(t)
	playerAt(g, 0).Hand = []Card{
		{Suit: SuitSpades, Rank: Rank7},
		{Suit: SuitHearts, Rank: RankK},
		{Suit: SuitHearts, Rank: RankQ},
	}
	playerAt(g, 1).Hand = []Card{
		{Suit: SuitClubs, Rank: Rank8},
		{Suit: SuitHearts, Rank: Rank7},
	}
	if err := g.PlayCard(playerAt(g, 0).ID, "7Spades"); err != nil {
		t.Fatalf("lead failed: %v", err)
	}

	result := g.AskForTrump(playerAt(g, 1).ID)
	if !result.Success {
		t.Fatalf("expected valid ask to succeed: %+v", result)
	}
	if result.TrumpSuit != "Hearts" {
		t.Fatalf("revealed trump expected Hearts got %s", result.TrumpSuit)
	}
	if !g.TrumpRevealed {
		t.Fatalf("trump must be revealed after valid ask")
	}
	if g.PlayerWhoAskedForTrump != 1 {
		t.Fatalf("asker expected 1 got %d", g.PlayerWhoAskedForTrump)
	}
	// 庄家（0 号位，第 1 队）握有主牌 K+Q：庄家一方有对牌
	if !g.HasTrumpMarriage {
		t.Fatalf("contractor marriage expected")
	}
	if g.OpposingTeamHasTrumpMarriage {
		t.Fatalf("opposing marriage not expected")
	}

	// 重复问主只是普通拒绝
	again := g.AskForTrump(playerAt(g, 1).ID)
	if again.Success || again.Foul {
		t.Fatalf("expected repeat ask to be a plain rejection")
	}
}

func TestAskerObligationClearsAfterTrick(t *testing.T) {
	g := setupPlayingGame(t)
	g.TrumpRevealed = true
	g.PlayerWhoAskedForTrump = 2
	playerAt(g, 0).Hand = []Card{{Suit: SuitSpades, Rank: Rank7}, {Suit: SuitClubs, Rank: Rank8}}
	playerAt(g, 1).Hand = []Card{{Suit: SuitSpades, Rank: Rank8}, {Suit: SuitClubs, Rank: Rank7}}
	playerAt(g, 2).Hand = []Card{{Suit: SuitHearts, Rank: Rank7}, {Suit: SuitClubs, Rank: Rank9}}
	playerAt(g, 3).Hand = []Card{{Suit: SuitSpades, Rank: Rank10}, {Suit: SuitClubs, Rank: Rank10}}

	for _, play := range []struct {
		position int
		cardID   string
	}{
		{0, "7Spades"},
		{1, "8Spades"},
		{2, "7Hearts"},
		{3, "10Spades"},
	} {
		if err := g.PlayCard(playerAt(g, play.position).ID, play.cardID); err != nil {
			t.Fatalf("play %s failed: %v", play.cardID, err)
		}
	}
	if err := g.ResolveCompleteTrick(); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if g.PlayerWhoAskedForTrump != -1 {
		t.Fatalf("asker obligation must reset after the trick resolves")
	}
}
