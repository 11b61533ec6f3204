package comparisons

import "codeberg.org/leetbuddy/server/internal/leetcode"

// Tie rule used by every winner below: username1 wins only on a strict
// improvement, so an exact tie always goes to username2. Clients rely on
// this, do not make it symmetric.

// compares two profiles by total solved count
func Compare(username1, username2 string, a, b *leetcode.Stats) *Result {
	return &Result{
		User1:      a,
		User2:      b,
		Winner:     pickHigher(username1, username2, a.Solved, b.Solved),
		Difference: abs(a.Solved - b.Solved),
	}
}

// scores every metric shown on the chart.
// ranking is lower-is-better with a missing rank counted as
// MissingRankingSentinel for the decision; the reported values stay raw.
func ScoreMetrics(username1, username2 string, a, b *leetcode.Stats) Metrics {
	return Metrics{
		TotalSolved:    metric(username1, username2, a.Solved, b.Solved),
		Streak:         metric(username1, username2, a.Streak, b.Streak),
		AcceptanceRate: metric(username1, username2, a.AcceptanceRate, b.AcceptanceRate),
		Ranking: Metric{
			User1:  a.Ranking,
			User2:  b.Ranking,
			Winner: pickLower(username1, username2, rankForDecision(a.Ranking), rankForDecision(b.Ranking)),
		},
	}
}

// pairs up the per-difficulty counts
func CompareCategories(a, b *leetcode.Stats) Categories {
	return Categories{
		Easy:   CategoryCount{User1: a.Easy, User2: b.Easy},
		Medium: CategoryCount{User1: a.Medium, User2: b.Medium},
		Hard:   CategoryCount{User1: a.Hard, User2: b.Hard},
	}
}

func metric(username1, username2 string, v1, v2 int) Metric {
	return Metric{User1: v1, User2: v2, Winner: pickHigher(username1, username2, v1, v2)}
}

func pickHigher(username1, username2 string, v1, v2 int) string {
	if v1 > v2 {
		return username1
	}
	return username2
}

func pickLower(username1, username2 string, v1, v2 int) string {
	if v1 < v2 {
		return username1
	}
	return username2
}

func rankForDecision(ranking int) int {
	if ranking <= 0 {
		return MissingRankingSentinel
	}
	return ranking
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
