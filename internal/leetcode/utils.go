package leetcode

import "fmt"

// upstream difficulty labels in acSubmissionNum
const (
	difficultyAll    = "All"
	difficultyEasy   = "Easy"
	difficultyMedium = "Medium"
	difficultyHard   = "Hard"
)

// derives a display acceptance rate from the solved count.
// this is floor(solved/(solved+100)*100), a placeholder heuristic and not a
// real acceptance ratio. clients depend on the exact values, keep it as is.
func AcceptanceRate(solved int) int {
	if solved <= 0 {
		return 0
	}

	return int(float64(solved) / float64(solved+100) * 100)
}

// reshapes the partial upstream payload into Stats.
// defaults: missing category count -> 0, missing ranking -> 0,
// missing username -> the requested one.
func toStats(requested string, payload *profileResponse) (*Stats, error) {
	if payload == nil || payload.MatchedUser == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, requested)
	}

	user := payload.MatchedUser

	username := requested
	if user.Username != nil && *user.Username != "" {
		username = *user.Username
	}

	ranking := 0
	if user.Profile != nil && user.Profile.Ranking != nil {
		ranking = *user.Profile.Ranking
	}

	var counts []difficultyCount
	if user.SubmitStatsGlobal != nil {
		counts = user.SubmitStatsGlobal.AcSubmissionNum
	}

	solved := countFor(counts, difficultyAll)

	return &Stats{
		Username:       username,
		Solved:         solved,
		Streak:         0,
		AcceptanceRate: AcceptanceRate(solved),
		Easy:           countFor(counts, difficultyEasy),
		Medium:         countFor(counts, difficultyMedium),
		Hard:           countFor(counts, difficultyHard),
		Ranking:        ranking,
	}, nil
}

// returns the count of the first entry with the given difficulty, 0 if absent
func countFor(counts []difficultyCount, difficulty string) int {
	for _, c := range counts {
		if c.Difficulty != difficulty {
			continue
		}

		if c.Count == nil || *c.Count < 0 {
			return 0
		}

		return *c.Count
	}

	return 0
}
