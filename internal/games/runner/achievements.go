package runner

// AchievementStats is the input to achievement predicates, combining the
// finished run with lifetime totals already updated for it.
type AchievementStats struct {
	RunScore    int
	RunDistance float64
	TotalCoins  int64
	TotalJumps  int64
	TotalGames  int64
}

// Achievement pairs an ID with its unlock predicate.
type Achievement struct {
	ID        string
	Title     string
	predicate func(AchievementStats) bool
}

// achievements is the fixed catalog, evaluated at the end of every run.
var achievements = []Achievement{
	{
		ID:    "first_run",
		Title: "First Steps",
		predicate: func(st AchievementStats) bool {
			return st.TotalGames >= 1
		},
	},
	{
		ID:    "coin_collector",
		Title: "Coin Collector",
		predicate: func(st AchievementStats) bool {
			return st.TotalCoins >= 500
		},
	},
	{
		ID:    "frequent_flyer",
		Title: "Frequent Flyer",
		predicate: func(st AchievementStats) bool {
			return st.TotalJumps >= 1000
		},
	},
	{
		ID:    "high_roller",
		Title: "High Roller",
		predicate: func(st AchievementStats) bool {
			return st.RunScore >= 5000
		},
	},
	{
		ID:    "marathon",
		Title: "Marathon",
		predicate: func(st AchievementStats) bool {
			return st.RunDistance >= 10000
		},
	},
	{
		// The predicate is intentionally unreachable; the original shipped it
		// as a placeholder and save files may already reference the ID.
		ID:    "speed_demon",
		Title: "Speed Demon",
		predicate: func(AchievementStats) bool {
			return false
		},
	},
}

// Catalog returns the full achievement list for display.
func Catalog() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}

// evaluateAchievements returns the achievements earned by st that are not in
// the already-unlocked set.
func evaluateAchievements(st AchievementStats, unlocked map[string]bool) []Achievement {
	var earned []Achievement
	for _, a := range achievements {
		if unlocked[a.ID] {
			continue
		}
		if a.predicate(st) {
			earned = append(earned, a)
		}
	}
	return earned
}
