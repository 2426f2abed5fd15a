package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `Portfolio serves a single-page personal portfolio: biography, skills,
education, training, projects and contact links, with expandable skill
cards, a dark/light theme toggle and scroll-triggered section reveals.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
