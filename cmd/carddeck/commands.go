package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"carddeck/internal/achievements"
	"carddeck/internal/goals"
	"carddeck/internal/profile"
)

func newLoginCmd() *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create or restore the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			res := s.Login(cmd.Context(), profile.Seed{Name: name, Email: email})
			p := res.Profile
			fmt.Printf("welcome %s (level %d, %d xp, %d-day streak)\n", displayName(p.Name), p.Level, p.XP, p.Streak)
			printUnlocks(res.NewUnlocks)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name for a new profile")
	cmd.Flags().StringVar(&email, "email", "", "email for a new profile")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			s.Logout(cmd.Context())
			fmt.Println("logged out; progress and notes kept")
			return nil
		},
	}
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <card-id>",
		Short: "Toggle a card's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.CompleteCard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res.Added {
				fmt.Printf("completed %s (%+d xp, level %d, streak %d)\n", res.CardID, res.XPDelta, res.Level, res.Streak)
			} else {
				fmt.Printf("uncompleted %s (%+d xp, level %d)\n", res.CardID, res.XPDelta, res.Level)
			}
			printUnlocks(res.NewUnlocks)
			return nil
		},
	}
}

func newMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark <card-id>",
		Short: "Toggle a card's bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.ToggleBookmark(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res.Added {
				fmt.Printf("bookmarked %s (%+d xp)\n", res.CardID, res.XPDelta)
			} else {
				fmt.Printf("unbookmarked %s (%+d xp)\n", res.CardID, res.XPDelta)
			}
			printUnlocks(res.NewUnlocks)
			return nil
		},
	}
}

func newNoteCmd() *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:   "note <card-id> [text...]",
		Short: "Show, set or remove a card note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			switch {
			case remove:
				s.DeleteNote(cmd.Context(), id)
				fmt.Printf("note removed for %s\n", id)
			case len(args) > 1:
				s.SaveNote(cmd.Context(), id, strings.Join(args[1:], " "))
				fmt.Printf("note saved for %s\n", id)
			default:
				note := s.Note(id)
				if note == "" {
					fmt.Printf("no note for %s\n", id)
				} else {
					fmt.Println(note)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&remove, "rm", false, "remove the note")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate progress and goal status",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			stats := s.Stats()
			fmt.Printf("completed:  %d/%d cards\n", stats.CompletedCount, stats.TotalCards)
			fmt.Printf("bookmarked: %d cards\n", stats.BookmarkedCount)
			fmt.Printf("categories fully done: %d\n", stats.CategoriesFullyCompleted)
			if p := s.Profile(); p != nil {
				fmt.Printf("profile:    level %d, %d xp, %d-day streak\n", p.Level, p.XP, p.Streak)
			}
			printReport("daily", s.DailyGoalReport())
			printReport("weekly", s.WeeklyGoalReport())
			printReport("streak", s.StreakGoalReport())
			return nil
		},
	}
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and unlock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			defs, unlocked := s.Achievements()
			at := map[string]string{}
			for _, u := range unlocked {
				at[u.ID] = u.UnlockedAt.Format("2006-01-02")
			}
			for _, def := range defs {
				if when, ok := at[def.ID]; ok {
					fmt.Printf("%s %-18s %s (unlocked %s)\n", def.Icon, def.Title, def.Description, when)
				} else {
					fmt.Printf("  %-18s %s (+%d xp)\n", def.Title, def.Description, def.XPReward)
				}
			}
			return nil
		},
	}
}

func newGoalsCmd() *cobra.Command {
	var daily, weekly, streak int
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or update study goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			patch := goals.Patch{}
			if cmd.Flags().Changed("daily") {
				patch.DailyCards = &daily
			}
			if cmd.Flags().Changed("weekly") {
				patch.WeeklyCards = &weekly
			}
			if cmd.Flags().Changed("streak") {
				patch.StreakGoal = &streak
			}
			g := s.UpdateGoals(cmd.Context(), patch)
			fmt.Printf("goals: %d cards/day, %d cards/week, %d-day streak\n", g.DailyCards, g.WeeklyCards, g.StreakGoal)
			printReport("daily", s.DailyGoalReport())
			printReport("weekly", s.WeeklyGoalReport())
			return nil
		},
	}
	cmd.Flags().IntVar(&daily, "daily", 0, "daily card target")
	cmd.Flags().IntVar(&weekly, "weekly", 0, "weekly card target")
	cmd.Flags().IntVar(&streak, "streak", 0, "streak target in days")
	return cmd
}

func newDecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List decks and per-card state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			for _, deck := range s.Catalog().Decks() {
				fmt.Printf("%s: %s\n", deck.DeckID, deck.Title)
				for _, card := range deck.Cards {
					marks := ""
					if s.IsCompleted(card.ID) {
						marks += " [done]"
					}
					if s.IsBookmarked(card.ID) {
						marks += " [marked]"
					}
					if s.Note(card.ID) != "" {
						marks += " [note]"
					}
					fmt.Printf("  %-24s %s%s\n", card.ID, card.Title, marks)
				}
			}
			return nil
		},
	}
}

func printUnlocks(unlocks []achievements.Definition) {
	for _, def := range unlocks {
		fmt.Printf("%s achievement unlocked: %s (+%d xp)\n", def.Icon, def.Title, def.XPReward)
	}
}

func displayName(name string) string {
	if name == "" {
		return "back"
	}
	return name
}

func printReport(label string, r goals.Report) {
	status := "in progress"
	if r.Met {
		status = "met"
	}
	fmt.Printf("%-6s goal: %d/%d (%d%%, %s)\n", label, r.Current, r.Target, r.Progress, status)
}
