package engine

import "fmt"

// matchTarget 先赢下 10 轮的队伍赢下整场
const matchTarget = 10

// checkMarriages 亮主时结算对牌：一队中任意一人同时持有主牌 K 和 Q
// 即算该队有对牌。庄家一方与守方各自独立判定。
func (g *Game) checkMarriages() {
	if g.TrumpSuit == nil {
		return
	}
	contractorTeam := teamOfPosition(g.ContractorPosition)

	g.HasTrumpMarriage = false
	g.OpposingTeamHasTrumpMarriage = false
	for _, p := range g.Players {
		if !g.holdsTrumpMarriage(p) {
			continue
		}
		if teamOfPosition(p.Position) == contractorTeam {
			g.HasTrumpMarriage = true
		} else {
			g.OpposingTeamHasTrumpMarriage = true
		}
	}
}

func (g *Game) holdsTrumpMarriage(p *Player) bool {
	hasKing, hasQueen := false, false
	for _, c := range p.Hand {
		if c.Suit != *g.TrumpSuit {
			continue
		}
		if c.Rank == RankK {
			hasKing = true
		}
		if c.Rank == RankQ {
			hasQueen = true
		}
	}
	return hasKing && hasQueen
}

// endRound 八墩打完后的轮结算。
// 庄家一方有对牌且底分已到 16 时加 4 分；守方有对牌时庄家的达标线抬高 4 分。
// 加倍时本轮按 2 轮计。
func (g *Game) endRound() {
	g.Phase = PhaseRoundEnd

	contractorTeam := teamOfPosition(g.ContractorPosition)
	contractorPoints := g.Team1Points
	if contractorTeam == 2 {
		contractorPoints = g.Team2Points
	}

	if g.HasTrumpMarriage && contractorPoints >= 16 {
		contractorPoints += 4
	}

	requiredPoints := g.ContractorBid
	if g.OpposingTeamHasTrumpMarriage {
		requiredPoints += 4
	}

	contractorWins := contractorPoints >= requiredPoints

	roundsToAward := 1
	doubleNote := ""
	if g.IsDoubled {
		roundsToAward = 2
		doubleNote = " 🔥 加倍生效，本轮算 2 轮！"
	}
	marriageNote := ""
	if g.OpposingTeamHasTrumpMarriage {
		marriageNote = fmt.Sprintf("（守方有对牌，达标线提高到 %d）", requiredPoints)
	}

	winnerTeam := contractorTeam
	if !contractorWins {
		winnerTeam = 3 - contractorTeam
	}
	if winnerTeam == 1 {
		g.Team1RoundsWon += roundsToAward
	} else {
		g.Team2RoundsWon += roundsToAward
	}

	if contractorWins {
		g.WinMessage = fmt.Sprintf("庄家（%d 号位）成功！拿到 %d 分（叫价 %d%s）%s",
			g.ContractorPosition+1, contractorPoints, g.ContractorBid, marriageNote, doubleNote)
	} else {
		g.WinMessage = fmt.Sprintf("庄家（%d 号位）失败！只拿到 %d 分（叫价 %d%s）%s",
			g.ContractorPosition+1, contractorPoints, g.ContractorBid, marriageNote, doubleNote)
	}

	g.checkMatchWinner()
}

func (g *Game) checkMatchWinner() {
	if g.Team1RoundsWon >= matchTarget {
		g.MatchWinner = 1
		g.WinMessage += "\n\n🎉 整场结束！第 1 队率先赢下 10 轮，获得最终胜利！"
	} else if g.Team2RoundsWon >= matchTarget {
		g.MatchWinner = 2
		g.WinMessage += "\n\n🎉 整场结束！第 2 队率先赢下 10 轮，获得最终胜利！"
	}
}
