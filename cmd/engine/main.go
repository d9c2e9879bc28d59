package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"cap_valuation/pkg/core/feed"
	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/core/pipeline"
	"cap_valuation/pkg/core/store"
	"cap_valuation/pkg/models"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	rulesPath := envOr("LEAGUE_RULES", "config/league.yaml")
	rules, err := league.LoadRules(rulesPath)
	if err != nil {
		log.Printf("Warning: %v. Falling back to default rules.", err)
		rules = league.DefaultRules()
	}

	input := pipeline.Input{
		LeagueID: envOr("LEAGUE_ID", "demo"),
		Weights:  models.DefaultRankWeights,
	}

	input.Rosters = mustLoad("testdata/rosters.json", feed.ParseRosters)
	input.SalaryAverages = mustLoad("testdata/salary_averages.json", feed.ParseSalaryAverages)
	input.DeadMoney = mustLoad("testdata/dead_money.json", feed.ParseDeadMoney)

	if html, err := os.ReadFile("testdata/rankings.html"); err == nil {
		overlays, err := feed.ParseRankingsHTML(string(html))
		if err != nil {
			log.Printf("Warning: rankings overlay skipped: %v", err)
		} else {
			input.RankOverlays = overlays
		}
	}

	// Archive the run only when a database is configured.
	var repo pipeline.Repository
	ctx := context.Background()
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("Database init failed: %v", err)
		}
		defer store.Close()
		repo = store.NewRunRepo()
	}

	engine := pipeline.NewEngine(rules, repo)
	result, err := engine.Run(ctx, input)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	printReport(result)
}

func printReport(result *pipeline.Result) {
	fmt.Println("\n################################################################################")
	fmt.Println("                 AUCTION VALUATION ENGINE - MARKET REPORT")
	fmt.Println("################################################################################")

	fmt.Println("\n[1] LEAGUE CAP SUMMARY")
	fmt.Printf("Teams:                  %8d\n", result.CapSummary.TeamCount)
	fmt.Printf("Total discretionary:  $ %12d\n", result.CapSummary.TotalDiscretionary)
	fmt.Printf("Average per team:     $ %12d\n", result.CapSummary.AverageDiscretionary)

	fmt.Println("\n[2] FRANCHISE TAGS")
	for _, p := range result.Predictions {
		if !p.HasTag {
			continue
		}
		fmt.Printf("%-12s tags %-22s (%s) at $ %d\n",
			p.FranchiseID, p.TaggedPlayer.Name, p.TaggedPlayer.Position, p.TagSalary)
	}

	fmt.Println("\n[3] POSITIONAL MARKETS")
	fmt.Printf("%-4s | %9s | %7s | %6s | %8s | %10s\n", "Pos", "Available", "Quality", "Demand", "Scarcity", "Inflation")
	positions := make([]string, 0, len(result.Market.Positions))
	for pos := range result.Market.Positions {
		positions = append(positions, pos)
	}
	sort.Strings(positions)
	for _, pos := range positions {
		pm := result.Market.Positions[pos]
		fmt.Printf("%-4s | %9d | %7d | %6d | %8.2f | %9.0f%%\n",
			pos, pm.AvailablePlayers, pm.QualityPlayers, pm.TotalDemand, pm.ScarcityIndex, pm.ProjectedPriceInflation*100)
	}

	fmt.Println("\n[4] MARKET CONDITION")
	fmt.Printf("Efficiency:            %8.2f (%s)\n", result.Market.MarketEfficiency, result.Market.Condition)
	fmt.Printf("Expected price change: %7.0f%%\n", result.Market.ExpectedPriceChange*100)

	fmt.Println("\n[5] TOP PRICED FREE AGENTS")
	top := make([]models.PlayerValuation, len(result.FreeAgents))
	copy(top, result.FreeAgents)
	sort.SliceStable(top, func(i, j int) bool { return top[i].EstimatedPrice > top[j].EstimatedPrice })
	if len(top) > 10 {
		top = top[:10]
	}
	for _, fa := range top {
		fmt.Printf("%-22s %-4s $ %10d (conf %.2f, %dyr)\n",
			fa.Name, fa.Position, fa.EstimatedPrice, fa.Confidence, fa.RecommendedYears)
	}

	fmt.Println("\n[6] VALUE OPPORTUNITIES")
	for _, flag := range result.Market.ValueOpportunities {
		fmt.Printf("%-22s %s\n", flag.Player.Name, flag.Reason)
	}

	fmt.Println("\n[Done] Market report complete.")
}

func mustLoad[T any](path string, parse func([]byte) (T, error)) T {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Critical: %s not found: %v", path, err)
	}
	parsed, err := parse(data)
	if err != nil {
		log.Fatalf("Critical: %s: %v", path, err)
	}
	return parsed
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
