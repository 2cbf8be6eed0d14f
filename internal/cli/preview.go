package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lvlgrid/internal/domain"
	"github.com/aalvaropc/lvlgrid/internal/infra/imagegrid"
	"github.com/aalvaropc/lvlgrid/internal/infra/logger"
	"github.com/aalvaropc/lvlgrid/internal/ui/tui"
)

func previewCmd() *cobra.Command {
	var imagePath string
	var palettePath string

	c := &cobra.Command{
		Use:   "preview",
		Short: "Render the assembled level as a scrollable terminal view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			logger.Setup(logger.Config{Debug: debug})

			pal, err := loadPalette(palettePath)
			if err != nil {
				return err
			}
			if pal == nil {
				pal = domain.DefaultPalette()
			}

			grid, err := imagegrid.NewLoader().LoadGrid(imagePath)
			if err != nil {
				return err
			}

			lvl, err := domain.BuildLevel(grid, pal)
			if err != nil {
				return err
			}

			return tui.Run(filepath.Base(imagePath), lvl)
		},
	}

	c.Flags().StringVarP(&imagePath, "image", "i", "", "Input image path (required)")
	c.Flags().StringVar(&palettePath, "palette", "", "YAML palette override file (optional)")

	_ = c.MarkFlagRequired("image")
	return c
}
