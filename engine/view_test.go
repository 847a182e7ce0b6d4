package engine

import "testing"

func TestPersonalizedStateHidesConcealedTrump(t *testing.T) {
	g := setupPlayingGame(t)

	// 亮主之前：主花色只有庄家（0 号位）看得到
	for pos := 0; pos < 4; pos++ {
		state := g.PersonalizedState(playerAt(g, pos).ID)
		if pos == 0 {
			if state.TrumpSuit != "Hearts" {
				t.Fatalf("contractor should see trump, got %q", state.TrumpSuit)
			}
		} else if state.TrumpSuit != "" {
			t.Fatalf("position %d should not see concealed trump, got %q", pos, state.TrumpSuit)
		}
		if state.TrumpRevealed {
			t.Fatalf("trump must not be marked revealed")
		}
	}

	g.TrumpRevealed = true
	for pos := 0; pos < 4; pos++ {
		state := g.PersonalizedState(playerAt(g, pos).ID)
		if state.TrumpSuit != "Hearts" || !state.TrumpRevealed {
			t.Fatalf("position %d should see revealed trump, got %q", pos, state.TrumpSuit)
		}
	}
}

func TestPersonalizedStateHandsAreViewerOnly(t *testing.T) {
	g := setupPlayingGame(t)

	viewer := playerAt(g, 1)
	viewer.Hand = []Card{
		{Suit: SuitClubs, Rank: RankJ},
		{Suit: SuitDiamonds, Rank: Rank9},
	}
	state := g.PersonalizedState(viewer.ID)

	if len(state.YourHand) != len(viewer.Hand) {
		t.Fatalf("viewer hand size %d, state shows %d", len(viewer.Hand), len(state.YourHand))
	}
	for _, pv := range state.Players {
		if pv.Position == 1 && !pv.IsYou {
			t.Fatalf("viewer's own seat should be marked")
		}
		if pv.Position != 1 && pv.IsYou {
			t.Fatalf("seat %d wrongly marked as viewer", pv.Position)
		}
		if pv.HandCount != len(playerAt(g, pv.Position).Hand) {
			t.Fatalf("seat %d hand count mismatch", pv.Position)
		}
	}

	// 旁观者（不在房间里的身份）拿不到手牌
	spectator := g.PersonalizedState("stranger")
	if len(spectator.YourHand) != 0 {
		t.Fatalf("spectator must not receive a hand")
	}
}

func TestPersonalizedStateCurrentTrick(t *testing.T) {
	g := setupPlayingGame(t)
	lead := playerAt(g, 0)
	lead.Hand = []Card{{Suit: SuitSpades, Rank: Rank7}}
	if err := g.PlayCard(lead.ID, "7Spades"); err != nil {
		t.Fatalf("play failed: %v", err)
	}

	state := g.PersonalizedState(playerAt(g, 3).ID)
	if len(state.CurrentTrick) != 1 {
		t.Fatalf("expected 1 card in trick view, got %d", len(state.CurrentTrick))
	}
	if state.CurrentTrick[0].PlayerPosition != 0 {
		t.Fatalf("trick view should record the leader's seat")
	}
}

func TestSummary(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.Summary()
	if s.RoomID != g.RoomID || s.PlayerCount != 4 || !s.IsFull {
		t.Fatalf("summary mismatch: %+v", s)
	}
	if len(s.PlayerNames) != 4 || s.PlayerNames[0] != "P0" {
		t.Fatalf("player names mismatch: %v", s.PlayerNames)
	}
	if s.Phase != "Waiting" {
		t.Fatalf("expected Waiting phase, got %s", s.Phase)
	}

	if got := g.PlayerName(playerAt(g, 2).ID); got != "P2" {
		t.Fatalf("PlayerName got %q", got)
	}
	if got := g.PlayerName("nobody"); got != "" {
		t.Fatalf("unknown id should yield empty name, got %q", got)
	}
}
