package generate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	contentusecases "mnada/internal/application/content/usecases"
	posterusecases "mnada/internal/application/poster/usecases"
	"mnada/internal/infrastructure/assets"
	"mnada/internal/infrastructure/config"
	"mnada/internal/infrastructure/platform"
	"mnada/internal/shared/logger"
)

var (
	env       string
	regions   []string
	crop      string
	date      string
	clock     string
	languages []string
)

// NewCommand builds the generate command tree: announcement captions and
// poster layouts straight to stdout, no server required.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate announcement content without starting the server",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringSliceVarP(&regions, "region", "r", nil, "Auction region (repeatable, selection order is kept)")
	cmd.PersistentFlags().StringVarP(&crop, "crop", "c", "", "Crop name, e.g. \"CHICK PEA\"")
	cmd.PersistentFlags().StringVarP(&date, "date", "d", "", "Auction date, YYYY-MM-DD")
	cmd.PersistentFlags().StringVarP(&clock, "time", "t", "10:30", "Auction start time, 24-hour HH:MM")

	cmd.AddCommand(newContentCommand(), newPosterCommand())

	return cmd
}

func newContentCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "content",
		Aliases: []string{"announcement"},
		Short:   "Generate the video title and platform captions",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, _, err := loadServices()
			if err != nil {
				return err
			}

			uc := contentusecases.NewGenerateAnnouncementUseCase(profiles, logger.NewLogger().Named("content"))
			result, err := uc.Execute(contentusecases.GenerateAnnouncementCommand{
				Regions: regions,
				Crop:    crop,
				Date:    date,
				Time:    clock,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"=== VIDEO TITLE ===\n%s\n\n=== FACEBOOK ===\n%s\n\n=== INSTAGRAM ===\n%s\n\n"+
					"=== FACEBOOK RESULTS ===\n%s\n\n=== INSTAGRAM RESULTS ===\n%s\n",
				result.VideoTitle, result.Facebook, result.Instagram,
				result.FacebookResults, result.InstagramResults)
			return nil
		},
	}
}

func newPosterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Generate poster layouts as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logos, err := loadServices()
			if err != nil {
				return err
			}

			uc := posterusecases.NewComposePosterUseCase(logos, logger.NewLogger().Named("poster"))
			result, err := uc.Execute(posterusecases.ComposePosterCommand{
				Regions:   regions,
				Crop:      crop,
				Date:      date,
				Time:      clock,
				Languages: languages,
			})
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&languages, "lang", "l", []string{"sw"}, "Poster language (repeatable: sw, en)")

	return cmd
}

// loadServices initializes config, logging, and the infrastructure the
// composers depend on.
func loadServices() (*platform.Registry, *assets.Catalog, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	profiles := platform.NewRegistry(cfg.Content.PlatformsPath, logger.NewLogger().Named("platform"))
	if err := profiles.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load platform profiles: %w", err)
	}

	return profiles, assets.NewCatalog(cfg.Content.AssetBasePath), nil
}
