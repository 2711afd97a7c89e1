package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/b1443/ClosetManager/internal/config"
	"github.com/b1443/ClosetManager/internal/model"
	"github.com/b1443/ClosetManager/internal/storage"
	"github.com/b1443/ClosetManager/internal/utils"
	"github.com/b1443/ClosetManager/pkg/classify"
	"github.com/b1443/ClosetManager/pkg/pixels"
)

func scanCmd() *cobra.Command {
	var (
		itemName string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "scan <image-or-directory>",
		Short: "Analyze clothing photos and add them to the catalog",
		Long: `Scan analyzes a photo (or every image in a directory), estimates the
garment's type, material, and dominant color, and files the result in the
catalog. Use --dry-run to see the analysis without saving anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			var store *storage.SQLiteStorage
			if !dryRun {
				store, err = openStorage(ctx, cfg)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			classifier, err := buildClassifier(cfg)
			if err != nil {
				return err
			}
			session := classify.NewSessionWithTimeout(classifier, cfg.Scan.Timeout)

			info, err := os.Stat(args[0])
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", args[0], err)
			}

			if info.IsDir() {
				return scanDirectory(ctx, cfg, store, session, args[0], dryRun)
			}
			return scanFile(ctx, cfg, store, session, args[0], itemName, dryRun)
		},
	}

	cmd.Flags().StringVar(&itemName, "name", "", "name for the cataloged item (single image only)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "analyze without saving to the catalog")
	cmd.Flags().String("backend", "", "vision backend (heuristic, ollama)")
	cmd.Flags().String("model", "", "vision model name for the ollama backend")
	_ = viper.BindPFlag("vision.backend", cmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("vision.model", cmd.Flags().Lookup("model"))

	return cmd
}

func scanFile(ctx context.Context, cfg *config.Config, store *storage.SQLiteStorage, session *classify.Session, path, name string, dryRun bool) error {
	buf, result, err := analyzeImage(ctx, session, path)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  Type:       %s\n", result.Type)
	fmt.Printf("  Material:   %s\n", result.Material)
	fmt.Printf("  Color:      %s\n", result.Color)
	fmt.Printf("  Confidence: %.2f\n", result.Confidence)

	if dryRun {
		return nil
	}

	rec := buildRecord(cfg, buf, name, result)
	if err := store.SaveRecord(ctx, &rec); err != nil {
		return err
	}

	fmt.Printf("Added %q to the catalog (id %s)\n", rec.Name, rec.ID)
	return nil
}

func scanDirectory(ctx context.Context, cfg *config.Config, store *storage.SQLiteStorage, session *classify.Session, dir string, dryRun bool) error {
	files, err := utils.ListImageFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list images in %s: %w", dir, err)
	}
	if len(files) == 0 {
		fmt.Printf("No images found in %s\n", dir)
		return nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Scanning wardrobe..."),
	)

	var added, skipped int
	for _, path := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		buf, result, err := analyzeImage(ctx, session, path)
		if err != nil {
			slog.Warn("Skipping image", "path", path, "error", err)
			skipped++
			_ = bar.Add(1)
			continue
		}

		if !dryRun {
			rec := buildRecord(cfg, buf, "", result)
			if saveErr := store.SaveRecord(ctx, &rec); saveErr != nil {
				return saveErr
			}
		}
		added++
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()

	if dryRun {
		fmt.Printf("Analyzed %d image(s), %d skipped (dry run)\n", added, skipped)
	} else {
		fmt.Printf("Added %d item(s) to the catalog, %d skipped\n", added, skipped)
	}
	return nil
}

func analyzeImage(ctx context.Context, session *classify.Session, path string) (*pixels.Buffer, classify.Result, error) {
	buf, err := pixels.Load(path)
	if err != nil {
		return nil, classify.Result{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	result, err := session.Classify(ctx, buf)
	if err != nil {
		if errors.Is(err, classify.ErrLowConfidence) || errors.Is(err, classify.ErrTimeout) {
			return nil, classify.Result{}, fmt.Errorf("%s: %w", path, err)
		}
		return nil, classify.Result{}, err
	}
	return buf, result, nil
}

func buildRecord(cfg *config.Config, buf *pixels.Buffer, name string, result classify.Result) model.ClothingRecord {
	if name == "" {
		name = result.Color + " " + result.Type.String()
	}
	rec := model.NewRecordFromClassification(name, result)

	thumb, err := buf.Thumbnail(cfg.Scan.ThumbnailSide, cfg.Scan.JPEGQuality)
	if err != nil {
		slog.Warn("Failed to build thumbnail", "error", err)
	} else {
		rec.FrontImage = thumb
	}
	return rec
}
