package engine

import "errors"

// PlayCard 出一张牌。第 4 张落下后进入 TrickComplete 展示停顿，
// 真正的结算由 ResolveCompleteTrick 触发。
func (g *Game) PlayCard(playerID, cardID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhasePlaying {
		return errors.New("当前不在出牌阶段")
	}
	p := g.findPlayer(playerID)
	if p == nil {
		return errors.New("玩家不在房间中")
	}
	if p.Position != g.CurrentPlayerPosition {
		return errors.New("还没轮到你出牌")
	}

	cardIdx := -1
	for i, c := range p.Hand {
		if c.ID() == cardID {
			cardIdx = i
			break
		}
	}
	if cardIdx == -1 {
		return errors.New("手里没有这张牌")
	}
	card := p.Hand[cardIdx]

	if !g.isValidPlay(p, card) {
		return errors.New("这张牌不符合出牌规则")
	}

	p.Hand = append(p.Hand[:cardIdx], p.Hand[cardIdx+1:]...)
	g.CurrentTrick.Cards = append(g.CurrentTrick.Cards, PlayedCard{
		PlayerPosition: p.Position,
		Card:           card,
	})
	if len(g.CurrentTrick.Cards) == 1 {
		suit := card.Suit
		g.CurrentTrick.LeadSuit = &suit
	}

	if len(g.CurrentTrick.Cards) == 4 {
		g.Phase = PhaseTrickComplete
	} else {
		g.CurrentPlayerPosition = (g.CurrentPlayerPosition + 1) % 4
	}
	return nil
}

// isValidPlay 出牌合法性：
//   - 领出时出什么都行；
//   - 本墩里刚亮主的人手里有主就必须出主，优先于跟牌规则；
//   - 其余情况有领出花色必须跟；缺门时出什么都行，不强制将吃。
func (g *Game) isValidPlay(p *Player, card Card) bool {
	if len(g.CurrentTrick.Cards) == 0 {
		return true
	}

	leadSuit := *g.CurrentTrick.LeadSuit
	hasLeadSuit := false
	for _, c := range p.Hand {
		if c.Suit == leadSuit {
			hasLeadSuit = true
			break
		}
	}
	hasTrump := false
	if g.TrumpRevealed && g.TrumpSuit != nil {
		for _, c := range p.Hand {
			if c.Suit == *g.TrumpSuit {
				hasTrump = true
				break
			}
		}
	}

	if g.PlayerWhoAskedForTrump == p.Position && hasTrump {
		return card.Suit == *g.TrumpSuit
	}
	if hasLeadSuit && card.Suit != leadSuit {
		return false
	}
	return true
}

// ResolveCompleteTrick 结算凑满的一墩。
// 进入函数后立刻把阶段翻成 Resolving，并发的重复调用看到的不再是
// TrickComplete，直接空跑返回，保证一墩只结算一次。
func (g *Game) ResolveCompleteTrick() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhaseTrickComplete {
		return errors.New("当前没有待结算的一墩")
	}
	g.Phase = PhaseResolving

	g.resolveTrick()
	g.PlayerWhoAskedForTrump = -1

	allEmpty := true
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		g.endRound()
	} else {
		g.Phase = PhasePlaying
		g.CurrentTrick = &Trick{LeadPlayerPosition: g.CurrentPlayerPosition}
	}
	return nil
}

func (g *Game) resolveTrick() {
	trick := g.CurrentTrick
	winner := trick.Cards[0]
	for _, played := range trick.Cards[1:] {
		if g.isCardStronger(played.Card, winner.Card, *trick.LeadSuit) {
			winner = played
		}
	}

	points := 0
	for _, played := range trick.Cards {
		points += played.Card.Rank.Points()
	}
	if teamOfPosition(winner.PlayerPosition) == 1 {
		g.Team1Points += points
	} else {
		g.Team2Points += points
	}

	g.CompletedTricks = append(g.CompletedTricks, trick)
	g.CurrentPlayerPosition = winner.PlayerPosition
}

// isCardStronger 亮主后主吃副、主比主论 Power；
// 其余情况只有领出花色之间论 Power，非主非领出花色永远吃不到。
func (g *Game) isCardStronger(challenger, current Card, leadSuit Suit) bool {
	if g.TrumpRevealed && g.TrumpSuit != nil {
		challengerIsTrump := challenger.Suit == *g.TrumpSuit
		currentIsTrump := current.Suit == *g.TrumpSuit
		if challengerIsTrump && !currentIsTrump {
			return true
		}
		if !challengerIsTrump && currentIsTrump {
			return false
		}
		if challengerIsTrump && currentIsTrump {
			return challenger.Rank.Power() > current.Rank.Power()
		}
	}

	if challenger.Suit != leadSuit {
		return false
	}
	if current.Suit != leadSuit {
		return true
	}
	return challenger.Rank.Power() > current.Rank.Power()
}
