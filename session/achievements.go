package session

// Achievement pairs a catalog entry with its unlock predicate. The
// predicate reads session state only, so evaluation is a pure function
// of the aggregate and re-running it is always safe.
type Achievement struct {
	Key         string
	Name        string
	Description string
	Unlocked    func(*Session) bool
}

// Catalog is the fixed achievement set. Saves holding keys outside this
// catalog keep them; saves missing keys default them to locked.
var Catalog = []Achievement{
	{
		Key:         "first_deck",
		Name:        "First time?",
		Description: "Complete your first deck.",
		Unlocked:    func(s *Session) bool { return s.DecksCompleted >= 1 },
	},
	{
		Key:         "win_streak_5",
		Name:        "Winning streak",
		Description: "Win 5 rounds in a row.",
		Unlocked:    func(s *Session) bool { return s.MaxWinStreak >= 5 },
	},
	{
		Key:         "win_streak_10",
		Name:        "On fire",
		Description: "Win 10 rounds in a row.",
		Unlocked:    func(s *Session) bool { return s.MaxWinStreak >= 10 },
	},
	{
		Key:         "statistical_anomaly",
		Name:        "Statistical Anomaly",
		Description: "Win a round with <10% odds.",
		Unlocked:    func(s *Session) bool { return s.LongShotWins >= 1 },
	},
	{
		Key:         "market_manipulator",
		Name:        "Market manipulator",
		Description: "Max out every shop upgrade.",
		Unlocked: func(s *Session) bool {
			u := s.Upgrades
			return u.OddsLevel >= 7 && u.BetLevel >= 7 && u.AICounter && u.JokerLevel >= 1
		},
	},
	{
		Key:         "long_haul",
		Name:        "In it for the long haul",
		Description: "Complete 5 decks.",
		Unlocked:    func(s *Session) bool { return s.DecksCompleted >= 5 },
	},
	{
		Key:         "vault_breaker",
		Name:        "Vault breaker",
		Description: "Reach 100 million credits.",
		Unlocked:    func(s *Session) bool { return s.TotalCredits >= 100_000_000 },
	},
	{
		Key:         "first_purchase",
		Name:        "First purchase",
		Description: "Buy your first upgrade.",
		Unlocked: func(s *Session) bool {
			u := s.Upgrades
			return u.OddsLevel > 0 || u.BetLevel > 0 || u.AICounter || u.JokerLevel > 0
		},
	},
	{
		Key:         "shadow_operator",
		Name:        "Shadow operator",
		Description: "Complete a side mission successfully.",
		Unlocked:    func(s *Session) bool { return s.MissionsCompleted >= 1 },
	},
	{
		Key:         "high_roller",
		Name:        "High roller",
		Description: "Reach 1 million credits.",
		Unlocked:    func(s *Session) bool { return s.TotalCredits >= 1_000_000 },
	},
}

// AchievementName returns the display name for a catalog key, or the
// key itself for entries this build does not know.
func AchievementName(key string) string {
	for _, a := range Catalog {
		if a.Key == key {
			return a.Name
		}
	}
	return key
}

// DefaultAchievements returns the locked state for every catalog key.
func DefaultAchievements() map[string]bool {
	state := make(map[string]bool, len(Catalog))
	for _, a := range Catalog {
		state[a.Key] = false
	}
	return state
}

// MergeAchievements fills catalog defaults into a stored achievement
// map. Stored keys win over defaults, and keys outside the catalog are
// kept rather than dropped so older and newer saves interoperate.
func MergeAchievements(stored map[string]bool) map[string]bool {
	state := DefaultAchievements()
	for key, unlocked := range stored {
		state[key] = unlocked
	}
	return state
}

// EvaluateAchievements checks every catalog predicate against the
// current state, marks newly satisfied keys unlocked and returns them.
// Already-unlocked keys never re-fire and never re-lock.
func (s *Session) EvaluateAchievements() []string {
	var unlocked []string
	for _, a := range Catalog {
		if s.Achievements[a.Key] {
			continue
		}
		if a.Unlocked(s) {
			s.Achievements[a.Key] = true
			unlocked = append(unlocked, a.Key)
		}
	}
	return unlocked
}
