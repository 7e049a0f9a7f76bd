package game

// eliminationSchedule maps a table-size bracket to suggested elimination
// counts for rounds 2 through 5. Round 1 and anything past round 5
// suggest zero. The schedule is advisory; the session actually stops on
// the cumulative eliminated count.
var eliminationSchedule = []struct {
	minPlayers int
	perRound   [4]int
}{
	{15, [4]int{2, 2, 2, 2}},
	{13, [4]int{1, 2, 2, 2}},
	{11, [4]int{1, 1, 2, 2}},
	{9, [4]int{1, 1, 1, 2}},
	{7, [4]int{1, 1, 1, 1}},
	{5, [4]int{0, 1, 1, 1}},
	{4, [4]int{0, 0, 1, 1}},
}

// EliminationsForRound suggests how many players a table of the given
// size should vote out in the given round
func EliminationsForRound(players, round int) int {
	if round < 2 || round > 5 {
		return 0
	}

	for _, bracket := range eliminationSchedule {
		if players >= bracket.minPlayers {
			return bracket.perRound[round-2]
		}
	}

	return 0
}
