package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/b1443/ClosetManager/internal/storage"
)

func removeCmd() *cobra.Command {
	var (
		all bool
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove an item (or everything) from the catalog",
		Long: `Remove deletes a single item by ID, or the whole catalog with --all.
A short ID prefix is enough as long as it matches exactly one item.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) != 1 {
				return errors.New("provide an item ID, or --all to empty the catalog")
			}

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

			if all {
				if !yes {
					return errors.New("removing every item needs --yes to confirm")
				}
				deleted, err := store.DeleteAllRecords(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Removed %d item(s)\n", deleted)
				return nil
			}

			id, err := resolveID(cmd, store, args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteRecord(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed item %s\n", shortID(id))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "remove every item from the catalog")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation for --all")

	return cmd
}

// resolveID expands a unique ID prefix to the full record ID.
func resolveID(cmd *cobra.Command, store *storage.SQLiteStorage, prefix string) (string, error) {
	ctx := cmd.Context()

	if _, err := store.GetRecord(ctx, prefix); err == nil {
		return prefix, nil
	}

	records, err := store.ListRecords(ctx, storage.ListFilter{})
	if err != nil {
		return "", err
	}

	var matches []string
	for i := range records {
		if strings.HasPrefix(records[i].ID, prefix) {
			matches = append(matches, records[i].ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("%w: %s", storage.ErrNotFound, prefix)
	default:
		return "", fmt.Errorf("ID prefix %q matches %d items, be more specific", prefix, len(matches))
	}
}
