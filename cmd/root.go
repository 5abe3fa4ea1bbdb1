package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yetobasi/homepage/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Academic portfolio homepage",
	Long: `homepage serves a single-page academic portfolio: profile, news,
honors, projects, experience and a photo carousel. The server keeps each
viewer's carousel and navigation state and the page script swaps in the
fragments it renders.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "homepage.yml", "config file path")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
