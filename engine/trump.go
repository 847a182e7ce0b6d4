package engine

import "errors"

// TrumpChoiceAuto 让牌堆定主：取庄家第二批牌里第三张的花色
const TrumpChoiceAuto = "auto"

// ChooseTrump 庄家定主（显式花色或 "auto"），随后补发第二批牌并进入出牌阶段。
// 主花色对其余玩家保密，直到有人亮主。
func (g *Game) ChooseTrump(playerID, choice string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhaseChooseTrump {
		return errors.New("当前不在定主阶段")
	}
	p := g.findPlayer(playerID)
	if p == nil {
		return errors.New("玩家不在房间中")
	}
	if p.Position != g.ContractorPosition {
		return errors.New("只有庄家能定主")
	}

	if choice == TrumpChoiceAuto {
		// 第二批 16 张从下标 16 开始，庄家的第三张落在 16 + 座位*4 + 2
		idx := 16 + g.ContractorPosition*4 + 2
		if idx >= len(g.Deck) {
			idx = 16
		}
		suit := g.Deck[idx].Suit
		g.TrumpSuit = &suit
	} else {
		suit, ok := ParseSuit(choice)
		if !ok {
			return errors.New("花色不合法")
		}
		g.TrumpSuit = &suit
	}

	g.TrumpRevealed = false
	g.dealSecondBatch()

	g.Phase = PhasePlaying
	g.CurrentPlayerPosition = g.CurrentBidderPosition
	g.CurrentTrick = &Trick{LeadPlayerPosition: g.CurrentBidderPosition}
	return nil
}
