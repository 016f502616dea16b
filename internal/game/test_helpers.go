package game

// Scripted fakes for driving the round and session state machines in
// tests. Each Ask* pops the next scripted answer and panics when the
// script runs out, so a test that over-consumes fails loudly.

type scriptedInteractor struct {
	bets      []int
	decisions []Decision
	playAgain []bool
}

func (s *scriptedInteractor) AskBet(credit int) int {
	if len(s.bets) == 0 {
		panic("scriptedInteractor: no bets left in script")
	}
	bet := s.bets[0]
	s.bets = s.bets[1:]
	return bet
}

func (s *scriptedInteractor) AskHitOrStand() Decision {
	if len(s.decisions) == 0 {
		panic("scriptedInteractor: no decisions left in script")
	}
	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d
}

func (s *scriptedInteractor) AskPlayAgain() bool {
	if len(s.playAgain) == 0 {
		panic("scriptedInteractor: no continue answers left in script")
	}
	again := s.playAgain[0]
	s.playAgain = s.playAgain[1:]
	return again
}

// recordingDisplay captures what the engine asked to render
type recordingDisplay struct {
	tables   int
	outcomes []bool
	credits  [][2]int
	messages []string
}

func (r *recordingDisplay) ShowTable(player, dealer Hand, hideHole bool) {
	r.tables++
}

func (r *recordingDisplay) ShowOutcome(player, dealer Hand, won bool) {
	r.outcomes = append(r.outcomes, won)
}

func (r *recordingDisplay) ShowCredit(before, after int) {
	r.credits = append(r.credits, [2]int{before, after})
}

func (r *recordingDisplay) ShowMessage(msg string) {
	r.messages = append(r.messages, msg)
}
