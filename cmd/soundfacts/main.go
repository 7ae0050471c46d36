package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dabeerhasan15/sounds/internal/adapters/library"
	"github.com/dabeerhasan15/sounds/internal/adapters/soundfacts"
	"github.com/dabeerhasan15/sounds/internal/config"
	"github.com/dabeerhasan15/sounds/internal/core/services"
	"github.com/dabeerhasan15/sounds/internal/render"
)

var (
	version    = "dev"
	jsonOutput bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "soundfacts",
		Short: "Song score cards from the terminal",
		Long: `SoundFacts submits a song title and artist name to the remote
analysis service and renders the resulting score card: eight fixed
rating categories, optional expansion categories, and a summary.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				printJSON(map[string]string{"version": version})
			} else {
				fmt.Printf("soundfacts %s\n", version)
			}
		},
	})

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(lookupCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <song> <artist>",
		Short: "Request a score card from the analysis service",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			song := strings.TrimSpace(args[0])
			artist := strings.TrimSpace(args[1])
			if song == "" || artist == "" {
				return fmt.Errorf("song and artist are required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client := soundfacts.NewClient(cfg.AnalysisURL, cfg.RequestTimeout)
			svc := services.NewOrchestrator(client)

			result := svc.Run(cmd.Context(), song, artist)
			if jsonOutput {
				printJSON(result)
				return nil
			}

			fmt.Print(render.Card(result.Report))
			return nil
		},
	}
}

func lookupCmd() *cobra.Command {
	var libraryPath string

	cmd := &cobra.Command{
		Use:   "lookup <song> <artist>",
		Short: "Find a song in a local report collection without touching the network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if libraryPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				libraryPath = cfg.LibraryPath
			}
			if libraryPath == "" {
				return fmt.Errorf("no library file given (use --library or SOUNDFACTS_LIBRARY)")
			}

			lib, err := library.Load(libraryPath)
			if err != nil {
				return err
			}

			report, found := lib.Find(args[0], args[1])
			if !found {
				return fmt.Errorf("no report for song %q artist %q (%d candidates)", args[0], args[1], lib.Len())
			}

			if jsonOutput {
				printJSON(report)
				return nil
			}

			fmt.Print(render.Card(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryPath, "library", "", "Path to a YAML report collection")
	return cmd
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
	}
}
