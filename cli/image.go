package cli

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/termgl/render"
	"github.com/lixenwraith/termgl/scene"
)

var (
	imageOver string
	imageX    int
	imageY    int

	imageCmd = &cobra.Command{
		Use:   "image <file>",
		Short: "Convert an image into characters",
		Long:  longImage,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}

			mode, err := render.ParseImageMode(viper.GetString("image.mode"))
			if err != nil {
				return err
			}
			surf := render.FromImage(img, viper.GetInt("image.width"), mode, viper.GetString("image.ramp"))

			if imageOver != "" {
				sc, err := scene.Load(imageOver)
				if err != nil {
					return err
				}
				base := sc.Surface()
				base.Blit(imageX, imageY, surf)
				surf = base
			}
			return surf.Display(cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().Int("width", 80, "output width in cells")
	imageCmd.Flags().String("mode", "ramp", "conversion mode (ramp, quadrant)")
	imageCmd.Flags().String("ramp", render.DefaultRamp, "characters from empty to dense")
	imageCmd.Flags().StringVar(&imageOver, "over", "", "blit the image onto this scene")
	imageCmd.Flags().IntVar(&imageX, "x", 0, "column of the image on the scene")
	imageCmd.Flags().IntVar(&imageY, "y", 0, "row of the image on the scene")
	viper.BindPFlag("image.width", imageCmd.Flags().Lookup("width"))
	viper.BindPFlag("image.mode", imageCmd.Flags().Lookup("mode"))
	viper.BindPFlag("image.ramp", imageCmd.Flags().Lookup("ramp"))
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

var longImage = `
Samples a PNG, JPEG, GIF, BMP or WebP image into a character grid. The ramp
mode maps luminance to characters, the quadrant mode thresholds 2x2 samples
into block characters. Transparent pixels stay blank so --over composites the
image onto a scene without hiding it.
`
