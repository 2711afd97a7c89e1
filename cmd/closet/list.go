package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/b1443/ClosetManager/internal/model"
	"github.com/b1443/ClosetManager/internal/storage"
	"github.com/b1443/ClosetManager/pkg/garment"
)

func listCmd() *cobra.Command {
	var (
		typeFilter     string
		materialFilter string
		colorFilter    string
		seasonFilter   string
		tagFilter      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged items",
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

			filter := storage.ListFilter{
				Color: colorFilter,
				Tag:   tagFilter,
			}
			if typeFilter != "" {
				filter.Type = garment.ParseType(typeFilter)
			}
			if materialFilter != "" {
				filter.Material = garment.ParseMaterial(materialFilter)
			}
			if seasonFilter != "" {
				filter.Season = model.ParseSeason(seasonFilter)
			}

			records, err := store.ListRecords(ctx, filter)
			if err != nil {
				return err
			}

			printRecords(records)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "filter by garment type")
	cmd.Flags().StringVar(&materialFilter, "material", "", "filter by material")
	cmd.Flags().StringVar(&colorFilter, "color", "", "filter by color")
	cmd.Flags().StringVar(&seasonFilter, "season", "", "filter by season")
	cmd.Flags().StringVar(&tagFilter, "tag", "", "filter by tag")

	return cmd
}

func printRecords(records []model.ClothingRecord) {
	if len(records) == 0 {
		fmt.Println("No items found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tMATERIAL\tCOLOR\tADDED")
	for i := range records {
		rec := &records[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(rec.ID), rec.Name, rec.Type, rec.Material, rec.Color,
			rec.DateAdded.Format("2006-01-02"))
	}
	_ = w.Flush()
	fmt.Printf("\n%d item(s)\n", len(records))
}

// shortID trims a UUID to its first segment for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
