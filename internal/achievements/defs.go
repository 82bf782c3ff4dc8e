package achievements

// Defaults is the shipped milestone ladder. Order matters only for
// presentation; evaluation walks every definition each time.
func Defaults() []Definition {
	return []Definition{
		{
			ID:          "first-steps",
			Title:       "First Steps",
			Description: "Complete your first card",
			Icon:        "🎯",
			XPReward:    15,
			Unlocked:    func(s Stats) bool { return s.CompletedCount >= 1 },
		},
		{
			ID:          "getting-warmer",
			Title:       "Getting Warmer",
			Description: "Complete 5 cards",
			Icon:        "🔥",
			XPReward:    30,
			Unlocked:    func(s Stats) bool { return s.CompletedCount >= 5 },
		},
		{
			ID:          "double-digits",
			Title:       "Double Digits",
			Description: "Complete 10 cards",
			Icon:        "🏅",
			XPReward:    50,
			Unlocked:    func(s Stats) bool { return s.CompletedCount >= 10 },
		},
		{
			ID:          "completionist",
			Title:       "Completionist",
			Description: "Complete every card in the catalog",
			Icon:        "👑",
			XPReward:    200,
			Unlocked:    func(s Stats) bool { return s.TotalCards > 0 && s.CompletedCount >= s.TotalCards },
		},
		{
			ID:          "collector",
			Title:       "Collector",
			Description: "Bookmark your first card",
			Icon:        "🔖",
			XPReward:    10,
			Unlocked:    func(s Stats) bool { return s.BookmarkedCount >= 1 },
		},
		{
			ID:          "curator",
			Title:       "Curator",
			Description: "Bookmark 5 cards",
			Icon:        "📚",
			XPReward:    25,
			Unlocked:    func(s Stats) bool { return s.BookmarkedCount >= 5 },
		},
		{
			ID:          "streak-3",
			Title:       "On a Roll",
			Description: "Keep a 3-day streak",
			Icon:        "⚡",
			XPReward:    40,
			Unlocked:    func(s Stats) bool { return s.Streak >= 3 },
		},
		{
			ID:          "streak-7",
			Title:       "Week of Grit",
			Description: "Keep a 7-day streak",
			Icon:        "💪",
			XPReward:    100,
			Unlocked:    func(s Stats) bool { return s.Streak >= 7 },
		},
		{
			ID:          "category-clear",
			Title:       "Category Clear",
			Description: "Fully complete one category",
			Icon:        "✅",
			XPReward:    60,
			Unlocked:    func(s Stats) bool { return s.CategoriesFullyCompleted >= 1 },
		},
	}
}
