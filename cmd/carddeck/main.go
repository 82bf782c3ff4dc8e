package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"carddeck/internal/session"
)

func main() {
	// Optional .env next to the binary; absence is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openSession builds the engine from environment config. Callers must
// Close it.
func openSession() (*session.Session, error) {
	cfg, err := session.FromEnv()
	if err != nil {
		return nil, err
	}
	return session.New(cfg)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carddeck",
		Short:         "Track learning-card progress, XP, streaks and achievements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newDoneCmd(),
		newMarkCmd(),
		newNoteCmd(),
		newStatsCmd(),
		newAchievementsCmd(),
		newGoalsCmd(),
		newDecksCmd(),
	)
	return root
}
