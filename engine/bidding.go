package engine

import "errors"

const minBid = 16

// PlaceBid 叫牌或放弃（bid == nil 表示放弃）。
// 叫价必须 >= 16 且严格高于当前最高价；不合规的请求原样拒绝、状态不变。
func (g *Game) PlaceBid(playerID string, bid *int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhaseBidding {
		return errors.New("当前不在叫牌阶段")
	}
	p := g.findPlayer(playerID)
	if p == nil {
		return errors.New("玩家不在房间中")
	}
	if p.Position != g.CurrentBidderPosition {
		return errors.New("还没轮到你叫牌")
	}

	if bid == nil {
		// 守卫：最后一个还没放弃的玩家不允许放弃，否则无人坐庄
		if g.activeBidders() == 1 {
			return errors.New("只剩你一人，不能放弃")
		}
		p.HasPassed = true
	} else {
		if *bid < minBid {
			return errors.New("叫价不能低于 16")
		}
		if *bid <= g.highestBid() {
			return errors.New("叫价必须高于当前最高价")
		}
		v := *bid
		p.CurrentBid = &v
	}

	if g.activeBidders() == 1 {
		contractor := g.soleActiveBidder()
		g.ContractorPosition = contractor.Position
		if contractor.CurrentBid != nil {
			g.ContractorBid = *contractor.CurrentBid
		} else {
			g.ContractorBid = minBid
		}
		// CurrentBidderPosition 停在最后行动的座位上，首墩由该座位领出
		g.Phase = PhaseDoubleChallenge
	} else {
		g.CurrentBidderPosition = g.nextBidder()
	}
	return nil
}

func (g *Game) activeBidders() int {
	n := 0
	for _, p := range g.Players {
		if !p.HasPassed {
			n++
		}
	}
	return n
}

func (g *Game) soleActiveBidder() *Player {
	for _, p := range g.Players {
		if !p.HasPassed {
			return p
		}
	}
	return nil
}

func (g *Game) highestBid() int {
	highest := 0
	for _, p := range g.Players {
		if p.CurrentBid != nil && *p.CurrentBid > highest {
			highest = *p.CurrentBid
		}
	}
	return highest
}

// nextBidder 顺时针找下一个还没放弃的座位
func (g *Game) nextBidder() int {
	next := (g.CurrentBidderPosition + 1) % 4
	for g.Players[next].HasPassed {
		next = (next + 1) % 4
	}
	return next
}

// RespondToDoubleChallenge 叫牌结束后，守方决定是否加倍。
// 只有庄家对面一队的玩家有权应答。
func (g *Game) RespondToDoubleChallenge(playerID string, accept bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhaseDoubleChallenge {
		return errors.New("当前不在加倍应答阶段")
	}
	p := g.findPlayer(playerID)
	if p == nil {
		return errors.New("玩家不在房间中")
	}
	if teamOfPosition(p.Position) == teamOfPosition(g.ContractorPosition) {
		return errors.New("庄家一方不能应答加倍")
	}

	g.IsDoubled = accept
	g.Phase = PhaseChooseTrump
	return nil
}
