package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	season string
	game   string
)

func init() {
	statsCmd.Flags().StringVar(&season, "season", "", "Restrict stats to one season")
	statsCmd.Flags().StringVar(&game, "game", "", "Restrict stats to one game")
	recordsCmd.Flags().StringVar(&season, "season", "", "Restrict records to one season")
	h2hCmd.Flags().StringVar(&season, "season", "", "Restrict the comparison to one season")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync [player-id]",
	Short: "Sync a player's matches from the ranking site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/sync", url.Values{"player": {args[0]}})
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the cached matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches", statParams())
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [player-id]",
	Short: "Show a player's aggregate statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := statParams()
		params.Set("player", args[0])
		return performGetRequest("/stats/player", params)
	},
}

var recordsCmd = &cobra.Command{
	Use:   "records [player-id]",
	Short: "Show a player's single-match records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := statParams()
		params.Set("player", args[0])
		return performGetRequest("/stats/records", params)
	},
}

var h2hCmd = &cobra.Command{
	Use:   "h2h [player-id] [player-id]",
	Short: "Compare two players head to head",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := statParams()
		params.Set("player1", args[0])
		params.Set("player2", args[1])
		return performGetRequest("/stats/h2h", params)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

func statParams() url.Values {
	params := url.Values{}
	if season != "" {
		params.Set("season", season)
	}
	if game != "" {
		params.Set("game", game)
	}
	return params
}

func performGetRequest(endpoint string, params url.Values) error {
	target := host + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	fmt.Printf("Making request to %s\n", target)

	resp, err := http.Get(target)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
