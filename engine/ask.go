package engine

import (
	"fmt"
	"strings"
)

// AskTrumpResult 问主的结果。
// Foul 为 true 时动作虽然失败，但房间状态已经改变（本轮判负），
// 必须广播给全房间，而不是只回给发起者。
type AskTrumpResult struct {
	Success   bool
	Foul      bool
	Message   string
	TrumpSuit string
}

// AskForTrump 问主。领出时不能问；手里还有领出花色却问主是犯规，
// 直接判对方赢下本轮。合法的问主会永久亮主，并让问主者在本墩内
// 背上“有主必出主”的义务。
func (g *Game) AskForTrump(playerID string) AskTrumpResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhasePlaying {
		return AskTrumpResult{Message: "当前不在出牌阶段"}
	}
	p := g.findPlayer(playerID)
	if p == nil {
		return AskTrumpResult{Message: "玩家不在房间中"}
	}
	if g.TrumpRevealed {
		return AskTrumpResult{Message: "主牌已经亮过了"}
	}
	if len(g.CurrentTrick.Cards) == 0 {
		return AskTrumpResult{Message: "领出时不能问主"}
	}

	leadSuit := *g.CurrentTrick.LeadSuit
	var leadSuitCards []string
	for _, c := range p.Hand {
		if c.Suit == leadSuit {
			leadSuitCards = append(leadSuitCards, c.Rank.String()+c.Suit.Symbol())
		}
	}

	if len(leadSuitCards) > 0 {
		g.punishFoulAsk(p, leadSuit, leadSuitCards)
		return AskTrumpResult{
			Foul: true,
			Message: fmt.Sprintf("⚠️ 犯规！你手里还有 %d 张%s（%s）却要求亮主，本轮判对方获胜！",
				len(leadSuitCards), leadSuit.String(), strings.Join(leadSuitCards, ", ")),
		}
	}

	g.TrumpRevealed = true
	g.PlayerWhoAskedForTrump = p.Position
	// 亮主的同时结算双方的对牌（主牌 K+Q）
	g.checkMarriages()

	return AskTrumpResult{
		Success:   true,
		TrumpSuit: g.TrumpSuit.String(),
	}
}

// punishFoulAsk 犯规问主：本轮直接判给对方，主牌保持原状（问主无效）
func (g *Game) punishFoulAsk(p *Player, leadSuit Suit, leadSuitCards []string) {
	foulTeam := teamOfPosition(p.Position)
	if foulTeam == 1 {
		g.Team2RoundsWon++
	} else {
		g.Team1RoundsWon++
	}

	winnerTeam := 3 - foulTeam
	g.WinMessage = fmt.Sprintf(
		"⚠️ 犯规！玩家 %s（%d 号位，第 %d 队）手持领出花色 %s（%s）却要求亮主，第 %d 队直接赢下本轮！",
		p.Name, p.Position+1, foulTeam,
		leadSuit.String(), strings.Join(leadSuitCards, ", "),
		winnerTeam,
	)

	g.checkMatchWinner()
	g.Phase = PhaseRoundEnd
}
