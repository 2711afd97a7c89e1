package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/b1443/ClosetManager/internal/utils"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := openStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats, err := store.GetStats(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Items:       %d\n", stats.TotalItems)
			fmt.Printf("Total value: %.2f\n", stats.TotalPrice)
			if info, err := os.Stat(store.Path()); err == nil {
				fmt.Printf("Database:    %s (%s)\n", store.Path(), utils.FormatFileSize(info.Size()))
			}

			printCounts("By type", stats.ByType)
			printCounts("By material", stats.ByMaterial)
			printCounts("By color", stats.ByColor)
			return nil
		},
	}
}

func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	// Largest buckets first, ties alphabetical.
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\t%d\n", k, counts[k])
	}
	_ = w.Flush()
}
