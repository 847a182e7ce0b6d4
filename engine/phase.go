package engine

// Phase 房间所处的阶段，只允许按既定顺序流转
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseBidding
	PhaseDoubleChallenge
	PhaseChooseTrump
	PhasePlaying
	PhaseTrickComplete
	PhaseResolving
	PhaseRoundEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseBidding:
		return "Bidding"
	case PhaseDoubleChallenge:
		return "DoubleChallenge"
	case PhaseChooseTrump:
		return "ChooseTrump"
	case PhasePlaying:
		return "Playing"
	case PhaseTrickComplete:
		return "TrickComplete"
	case PhaseResolving:
		return "Resolving"
	case PhaseRoundEnd:
		return "RoundEnd"
	default:
		return "Unknown"
	}
}
