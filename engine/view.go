package engine

import "game29/dto"

// PersonalizedState 按观看者视角生成投影。隐藏信息规则都集中在这里：
// 手牌只给本人，主花色只给庄家或在亮主之后给所有人。
func (g *Game) PersonalizedState(playerID string) *dto.PersonalizedState {
	g.mu.Lock()
	defer g.mu.Unlock()

	viewer := g.findPlayer(playerID)
	isContractor := viewer != nil && viewer.Position == g.ContractorPosition

	players := make([]dto.PlayerPublicView, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, dto.PlayerPublicView{
			Name:       p.Name,
			Position:   p.Position,
			Team:       p.Team,
			HandCount:  len(p.Hand),
			IsYou:      viewer != nil && p.ID == viewer.ID,
			CurrentBid: p.CurrentBid,
			HasPassed:  p.HasPassed,
		})
	}

	state := &dto.PersonalizedState{
		RoomID:                       g.RoomID,
		Phase:                        g.Phase.String(),
		Players:                      players,
		CurrentBidderPosition:        g.CurrentBidderPosition,
		ContractorPosition:           g.ContractorPosition,
		ContractorBid:                g.ContractorBid,
		IsDoubled:                    g.IsDoubled,
		TrumpRevealed:                g.TrumpRevealed,
		CurrentPlayerPosition:        g.CurrentPlayerPosition,
		Team1Points:                  g.Team1Points,
		Team2Points:                  g.Team2Points,
		HasTrumpMarriage:             g.HasTrumpMarriage,
		OpposingTeamHasTrumpMarriage: g.OpposingTeamHasTrumpMarriage,
		WinMessage:                   g.WinMessage,
		Team1RoundsWon:               g.Team1RoundsWon,
		Team2RoundsWon:               g.Team2RoundsWon,
		MatchWinner:                  g.MatchWinner,
	}

	if g.TrumpSuit != nil && (g.TrumpRevealed || isContractor) {
		state.TrumpSuit = g.TrumpSuit.String()
	}
	if viewer != nil {
		state.YourHand = make([]dto.CardView, 0, len(viewer.Hand))
		for _, c := range viewer.Hand {
			state.YourHand = append(state.YourHand, cardToView(c))
		}
	}
	if g.CurrentTrick != nil {
		state.CurrentTrick = make([]dto.PlayedCardView, 0, len(g.CurrentTrick.Cards))
		for _, played := range g.CurrentTrick.Cards {
			state.CurrentTrick = append(state.CurrentTrick, dto.PlayedCardView{
				PlayerPosition: played.PlayerPosition,
				Card:           cardToView(played.Card),
			})
		}
	}
	return state
}

func cardToView(c Card) dto.CardView {
	return dto.CardView{
		ID:   c.ID(),
		Suit: c.Suit.String(),
		Rank: c.Rank.String(),
	}
}

// Summary 房间列表用的摘要，不含任何牌局规则信息
func (g *Game) Summary() dto.RoomSummary {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		names = append(names, p.Name)
	}
	return dto.RoomSummary{
		RoomID:      g.RoomID,
		PlayerCount: len(g.Players),
		PlayerNames: names,
		Phase:       g.Phase.String(),
		IsFull:      len(g.Players) >= 4,
	}
}

// PlayerName 按连接身份查玩家昵称，查不到返回空串
func (g *Game) PlayerName(playerID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p := g.findPlayer(playerID); p != nil {
		return p.Name
	}
	return ""
}
