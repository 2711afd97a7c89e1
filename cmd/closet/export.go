package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/b1443/ClosetManager/internal/export"
	"github.com/b1443/ClosetManager/internal/storage"
)

func exportCmd() *cobra.Command {
	var (
		formatFlag string
		outputFlag string
		syncFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to CSV or JSON",
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

			records, err := store.ListRecords(ctx, storage.ListFilter{})
			if err != nil {
				return err
			}

			name := formatFlag
			if name == "" {
				name = cfg.Export.DefaultFormat
			}
			format, err := export.ParseFormat(name)
			if err != nil {
				return err
			}

			path := outputFlag
			if path == "" {
				path = filepath.Join(cfg.Export.Dir,
					fmt.Sprintf("closet-%s.%s", time.Now().Format("2006-01-02"), format))
			}

			if err := export.WriteFile(path, format, records); err != nil {
				return err
			}
			fmt.Printf("Exported %d item(s) to %s\n", len(records), path)

			if syncFlag {
				if cfg.Export.SyncDir == "" {
					return fmt.Errorf("no export.sync_dir configured")
				}
				dst, err := export.CopyToDir(path, cfg.Export.SyncDir)
				if err != nil {
					return err
				}
				fmt.Printf("Synced copy to %s\n", dst)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "export format (csv, json)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&syncFlag, "sync", false, "copy the export into the configured sync directory")

	return cmd
}
