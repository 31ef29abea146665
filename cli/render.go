package cli

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termgl/scene"
)

var (
	pngPath string
	pngFg   string
	pngBg   string

	renderCmd = &cobra.Command{
		Use:   "render <scene>",
		Short: "Composite a scene and print it, or snapshot it to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			surf := sc.Surface()

			if pngPath == "" {
				return surf.Display(cmd.OutOrStdout())
			}

			fg, err := parseHexColor(pngFg)
			if err != nil {
				return err
			}
			bg, err := parseHexColor(pngBg)
			if err != nil {
				return err
			}

			f, err := os.Create(pngPath)
			if err != nil {
				return fmt.Errorf("create snapshot: %w", err)
			}
			if err := surf.WritePNG(f, fg, bg); err != nil {
				f.Close()
				return fmt.Errorf("write snapshot: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close snapshot: %w", err)
			}
			log.Info("wrote snapshot", "path", pngPath, "width", surf.Width(), "height", surf.Height())
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&pngPath, "png", "", "write a PNG snapshot to this file instead of printing")
	renderCmd.Flags().StringVar(&pngFg, "fg", "#e0e0e0", "snapshot foreground color")
	renderCmd.Flags().StringVar(&pngBg, "bg", "#101010", "snapshot background color")
}

func parseHexColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", hex, err)
	}
	return c, nil
}
