package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lvlgrid/internal/domain"
	"github.com/aalvaropc/lvlgrid/internal/infra/config"
	"github.com/aalvaropc/lvlgrid/internal/infra/imagegrid"
	"github.com/aalvaropc/lvlgrid/internal/infra/levelstore"
	"github.com/aalvaropc/lvlgrid/internal/infra/logger"
	"github.com/aalvaropc/lvlgrid/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var imagePath string
	var outPath string
	var palettePath string
	var pretty bool
	var debug bool

	cmd := &cobra.Command{
		Use:          "lvlgrid",
		Short:        "lvlgrid — convert a palette image into a level JSON description",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(logger.Config{Debug: debug})

			opts := []usecase.ConvertOption{usecase.WithLogger(logger.L())}
			pal, err := loadPalette(palettePath)
			if err != nil {
				return err
			}
			if pal != nil {
				opts = append(opts, usecase.WithPalette(pal))
			}

			uc := usecase.NewConvertImage(imagegrid.NewLoader(), levelstore.NewWriter(), opts...)
			_, err = uc.Execute(cmd.Context(), usecase.ConvertParams{
				ImagePath: imagePath,
				OutPath:   outPath,
				Pretty:    pretty,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Input image path (required)")
	cmd.Flags().StringVarP(&outPath, "outfile", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the JSON output")
	cmd.Flags().StringVar(&palettePath, "palette", "", "YAML palette override file (optional)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")

	_ = cmd.MarkFlagRequired("image")

	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(previewCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// loadPalette returns nil when no override file is given.
func loadPalette(path string) (domain.Palette, error) {
	if path == "" {
		return nil, nil
	}
	return config.NewLoader().LoadPalette(path)
}
