package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/HerbHall/specmatch/internal/catalog"
)

// runQuery answers one query and returns the process exit code.
func runQuery(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	asJSON := fs.Bool("json", false, "print the recommendation as JSON")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	a, err := bootstrap(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		return 1
	}
	defer func() { _ = a.logger.Sync() }()

	rec := a.engine.Recommend(context.Background(), strings.Join(fs.Args(), " "))
	if err := printRecommendation(out, rec, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return 1
	}
	if rec.Status == catalog.StatusError {
		return 1
	}
	return 0
}

// printRecommendation renders rec as indented JSON or as a status line
// followed by an aligned product table.
func printRecommendation(w io.Writer, rec catalog.Recommendation, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	if _, err := fmt.Fprintf(w, "%s: %s\n", rec.Status, rec.Message); err != nil {
		return err
	}
	if len(rec.Products) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBRAND\tPRICE\tRAM\tSTORAGE\tUSE CASE")
	for _, p := range rec.Products {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%dGB\t%dGB\t%s\n",
			p.Name, p.Brand, p.Price, p.RAM, p.Storage, p.UseCase)
	}
	return tw.Flush()
}
