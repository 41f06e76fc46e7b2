package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"inmogestor-backend/internal/config"
	"inmogestor-backend/internal/cron"
	"inmogestor-backend/internal/database"
	"inmogestor-backend/internal/navigation"
	"inmogestor-backend/internal/reports"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/store"
)

// loadCatalog reads the catalog from PostgreSQL when DATABASE_URL is set,
// otherwise from the built-in fixtures.
func loadCatalog(ctx context.Context) (*store.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.DB.Enabled() {
		return store.Load(ctx, store.FixtureSource{})
	}

	db, err := database.New(ctx, &cfg.DB)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return store.Load(ctx, store.NewPostgresSource(db))
}

// searchers maps each searchable page to a function returning its
// matching rows.
func searchers(c *store.Catalog) map[string]func(query string) any {
	return map[string]func(string) any{
		"tenants":       func(q string) any { return search.FilterSearchable(c.Tenants(), q) },
		"owners":        func(q string) any { return search.FilterSearchable(c.Owners(), q) },
		"properties":    func(q string) any { return search.FilterSearchable(c.Properties(), q) },
		"contracts":     func(q string) any { return search.FilterSearchable(c.Contracts(), q) },
		"payments":      func(q string) any { return search.FilterSearchable(c.Payments(), q) },
		"users":         func(q string) any { return search.FilterSearchable(c.Users(), q) },
		"notifications": func(q string) any { return search.FilterSearchable(c.Notifications(), q) },
		"backups":       func(q string) any { return search.FilterSearchable(c.Backups(), q) },
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <page> [query]",
		Short: "Filter a page's records with the dashboard search",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			all := searchers(catalog)
			find, ok := all[args[0]]
			if !ok {
				names := make([]string, 0, len(all))
				for name := range all {
					names = append(names, name)
				}
				sort.Strings(names)
				return fmt.Errorf("unknown page %q (one of: %s)", args[0], strings.Join(names, ", "))
			}

			query := ""
			if len(args) == 2 {
				query = args[1]
			}
			return printJSON(cmd.OutOrStdout(), find(query))
		},
	}
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the operational and financial reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			tabFlag, _ := cmd.Flags().GetString("tab")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			asCSV, _ := cmd.Flags().GetBool("csv")

			tab, err := reports.ParseTab(tabFlag)
			if err != nil {
				return err
			}
			rng, err := reports.ParseRange(from, to)
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			rep := reports.Build(catalog.Reports(), tab, rng, time.Now())
			if asCSV {
				return reports.WriteCSV(cmd.OutOrStdout(), rep)
			}
			return printJSON(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().String("tab", "", "operational or financial (default both)")
	cmd.Flags().String("from", "", "start date, YYYY-MM-DD")
	cmd.Flags().String("to", "", "end date, YYYY-MM-DD")
	cmd.Flags().Bool("csv", false, "write CSV instead of JSON")

	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the dashboard pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tTITLE\tLAYOUT\tAPI")
			for _, p := range navigation.Pages() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Path, p.Title, p.Layout, p.API)
			}
			return tw.Flush()
		},
	}
}

func digestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print today's overdue payments and expiring contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			window, _ := cmd.Flags().GetInt("window")

			catalog, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cron.BuildDigest(catalog, window, time.Now()))
		},
	}

	cmd.Flags().Int("window", 60, "days ahead to look for expiring contracts")

	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
