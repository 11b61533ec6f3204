package comparisons

import "math/rand/v2"

const (
	syntheticMin  = 200
	syntheticSpan = 500
)

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// generates the placeholder monthly series: one point per month, each side
// uniform in [200, 700). this is not real activity data.
func MonthlySeries(rng *rand.Rand) []MonthlyPoint {
	series := make([]MonthlyPoint, 0, len(months))

	for _, month := range months {
		series = append(series, MonthlyPoint{
			Month: month,
			User1: syntheticMin + rng.IntN(syntheticSpan),
			User2: syntheticMin + rng.IntN(syntheticSpan),
		})
	}

	return series
}
