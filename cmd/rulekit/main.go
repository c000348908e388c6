package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	rulekit "github.com/adguardteam/rulekit"
	"github.com/adguardteam/rulekit/internal/fetcher"
	"github.com/adguardteam/rulekit/internal/models"
	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     models.Config

	sourceURL string
	dedupe    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rulekit",
	Short: "Parse and regenerate adblock filter-list rules",
	Long: `rulekit reads adblock filter-list rules (AdGuard, uBlock Origin, and
Adblock Plus dialects) one line at a time and drives them through the
cosmetic/network dispatcher, either dumping the parsed rule as JSON,
regenerating canonical rule text, round-trip checking the two, or
reporting summary statistics.`,
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse rules and print the resulting AST as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Parse rules and regenerate canonical rule text",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [file]",
	Short: "Parse, regenerate, and re-parse each rule, reporting mismatches",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoundtrip,
}

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print parse statistics for a filter list",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./configs/rulekit.toml)")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "url", "", "fetch rules from this URL instead of a local file")
	rootCmd.PersistentFlags().BoolVar(&dedupe, "dedupe", false, "drop duplicate raw lines before processing")

	rootCmd.AddCommand(parseCmd, generateCmd, roundtripCmd, statsCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rulekit")
		viper.SetConfigType("toml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.retries", 3)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing config: %v\n", err)
	}
}

// openSource opens the rule source named by args (a local file path) or,
// if --url was given, fetches it over HTTP via internal/fetcher.
func openSource(args []string) (io.ReadCloser, error) {
	if sourceURL != "" {
		f := fetcher.New(cfg.HTTP)
		data, err := f.Fetch(context.Background(), sourceURL)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", sourceURL, err)
		}
		return io.NopCloser(strings.NewReader(string(data))), nil
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", args[0], err)
		}
		return f, nil
	}

	return io.NopCloser(os.Stdin), nil
}

// readLines reads src line by line. When dedupe is set, it drops duplicate
// raw lines (preserving first-seen order) before the caller ever parses
// them, via rule.DeduplicateRaw.
func readLines(src io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if dedupe {
		lines = rule.DeduplicateRaw(lines)
	}
	return lines, nil
}

// parsedLine is parse's per-line JSON record. Rule is a bare rule.Node
// interface value; json.Marshal emits whichever concrete struct underlies
// it (rule.CosmeticRule or rule.NetworkRule), tagged by Category so a
// consumer can tell the two apart without type-switching on shape.
type parsedLine struct {
	Raw      string    `json:"raw"`
	Category string    `json:"category"`
	Rule     rule.Node `json:"rule"`
}

func categoryName(c rule.Category) string {
	if c == rule.Cosmetic {
		return "cosmetic"
	}
	return "network"
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := openSource(args)
	if err != nil {
		return err
	}
	defer src.Close()

	rawLines, err := readLines(src)
	if err != nil {
		return err
	}

	var out []parsedLine
	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)
		if line == "" || rulekit.IsComment(line) {
			continue
		}

		node, err := rulekit.Parse(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			continue
		}

		out = append(out, parsedLine{Raw: line, Category: categoryName(node.Category()), Rule: node})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	src, err := openSource(args)
	if err != nil {
		return err
	}
	defer src.Close()

	rawLines, err := readLines(src)
	if err != nil {
		return err
	}

	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)
		if line == "" || rulekit.IsComment(line) {
			fmt.Println(raw)
			continue
		}

		node, err := rulekit.Parse(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			continue
		}

		out, err := rulekit.Generate(node)
		if err != nil {
			fmt.Fprintf(os.Stderr, "regenerating %q: %v\n", line, err)
			continue
		}
		fmt.Println(out)
	}
	return nil
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	src, err := openSource(args)
	if err != nil {
		return err
	}
	defer src.Close()

	rawLines, err := readLines(src)
	if err != nil {
		return err
	}

	total, mismatches := 0, 0
	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)
		if line == "" || rulekit.IsComment(line) {
			continue
		}
		total++

		node, err := rulekit.Parse(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: parse error: %v\n", line, err)
			mismatches++
			continue
		}

		regenerated, err := rulekit.Generate(node)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: generate error: %v\n", line, err)
			mismatches++
			continue
		}

		again, err := rulekit.Parse(regenerated)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: re-parse error after regeneration to %q: %v\n", line, regenerated, err)
			mismatches++
			continue
		}

		if !nodesEqual(node, again) {
			fmt.Fprintf(os.Stderr, "%s: AST mismatch after round trip (regenerated: %q)\n", line, regenerated)
			mismatches++
		}
	}

	fmt.Printf("%d/%d rules round-tripped cleanly\n", total-mismatches, total)
	if mismatches > 0 {
		return fmt.Errorf("%d round-trip mismatches", mismatches)
	}
	return nil
}

func nodesEqual(a, b rule.Node) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(aj) == string(bj)
}

func runStats(cmd *cobra.Command, args []string) error {
	src, err := openSource(args)
	if err != nil {
		return err
	}
	defer src.Close()

	rawLines, err := readLines(src)
	if err != nil {
		return err
	}

	stats := rule.NewStats()
	dialectCounts := make(map[string]int)

	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		stats.Total++

		if rulekit.IsComment(line) {
			stats.Comments++
			continue
		}

		node, err := rulekit.Parse(line)
		if err != nil {
			stats.RecordError(errorKind(err))
			continue
		}

		switch n := node.(type) {
		case rule.CosmeticRule:
			stats.Cosmetic++
			if n.Exception {
				stats.Exceptions++
			}
			dialectCounts[dialectName(n.Dialect)]++
		case rule.NetworkRule:
			stats.Network++
			if n.Exception {
				stats.Exceptions++
			}
			dialectCounts[dialectName(n.Dialect)]++
		}
	}

	fmt.Printf("total:      %d\n", stats.Total)
	fmt.Printf("comments:   %d\n", stats.Comments)
	fmt.Printf("cosmetic:   %d\n", stats.Cosmetic)
	fmt.Printf("network:    %d\n", stats.Network)
	fmt.Printf("exceptions: %d\n", stats.Exceptions)
	fmt.Printf("errors:     %d\n", stats.Errors)

	if len(dialectCounts) > 0 {
		fmt.Println("by dialect:")
		for name, count := range dialectCounts {
			fmt.Printf("  %s: %d\n", name, count)
		}
	}
	if len(stats.SkipReasons) > 0 {
		fmt.Println("errors by kind:")
		for reason, count := range stats.SkipReasons {
			fmt.Printf("  %s: %d\n", reason, count)
		}
	}
	return nil
}

func dialectName(d rule.Dialect) string {
	switch d {
	case rule.AdGuard:
		return "adguard"
	case rule.UblockOrigin:
		return "ublock-origin"
	case rule.AdblockPlus:
		return "adblock-plus"
	default:
		return "common"
	}
}

// errorKind extracts the rulekiterr.Kind name from err, falling back to its
// plain message for errors rulekit didn't itself produce.
func errorKind(err error) string {
	var rerr *rulekit.Error
	if errors.As(err, &rerr) {
		return rerr.Kind.String()
	}
	return err.Error()
}
