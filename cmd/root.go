package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "crypto-advisor",
	Short: "Rule-based crypto trade advisory from spot price and headline sentiment",
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(startCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
