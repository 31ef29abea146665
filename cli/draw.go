package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/termgl/draw"
	"github.com/lixenwraith/termgl/raster"
	"github.com/lixenwraith/termgl/scene"
	"github.com/lixenwraith/termgl/terminal"
)

var (
	drawPlain bool

	drawCmd = &cobra.Command{
		Use:   "draw <scene>",
		Short: "Draw a scene directly on the terminal",
		Long:  longDraw,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			switch backend := viper.GetString("draw.backend"); backend {
			case "ansi", "":
				term, err := terminal.NewStdout()
				if err != nil {
					return err
				}
				return drawScene(sc, term, drawPlain)

			case "tcell":
				return drawTcell(sc, drawPlain)

			default:
				return fmt.Errorf("unknown backend %q", backend)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().String("backend", "ansi", "terminal backend (ansi, tcell)")
	drawCmd.Flags().BoolVar(&drawPlain, "plain", false, "draw without colors")
	viper.BindPFlag("draw.backend", drawCmd.Flags().Lookup("backend"))
}

// drawScene clears t and draws sc through the plain or colored front-end
// The cursor is left below the scene
func drawScene(sc *scene.Scene, t terminal.Terminal, plain bool) error {
	var (
		sink  raster.Sink
		flush func() error
	)
	if plain {
		p := draw.NewPlain(t)
		p.Clear()
		sink, flush = p.Sink(), p.Flush
	} else {
		c := draw.NewColored(t)
		c.Clear()
		sink, flush = c.Sink(), c.Flush
	}

	sc.Draw(sink, terminal.Reset)
	_, h := t.Size()
	t.MoveCursor(0, min(sc.Height, max(h-1, 0)))

	log.Debug("scene drawn", "width", sc.Width, "height", sc.Height, "plain", plain)
	return flush()
}

// drawTcell draws on a tcell screen and holds it until a key is pressed
func drawTcell(sc *scene.Scene, plain bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	t := terminal.NewTcell(screen)
	if err := drawScene(sc, t, plain); err != nil {
		return err
	}

	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := drawScene(sc, t, plain); err != nil {
				return err
			}
		}
	}
}

var longDraw = `
Draws a scene in immediate mode. The colored front-end (default) clips to the
terminal size; --plain writes unstyled characters and leaves clipping to the
terminal. With --backend tcell the scene stays on screen until a key is pressed
and is redrawn on resize.
`
