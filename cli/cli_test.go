package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameScene = `
width: 10
height: 5
background: "."
layers:
  - shapes:
      - {kind: rectangle, x: 1, y: 1, width: 7, height: 3}
`

// resetFlags restores every flag to its default between runs of the shared root command
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runIn(t, t.TempDir(), args...)
}

// runIn executes the root command with HOME set to home
func runIn(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRender(t *testing.T) {
	path := writeFile(t, "frame.yaml", []byte(frameScene))
	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "..........\n.#######..\n.#.....#..\n.#######..\n..........\n", out)
}

func TestRenderPNG(t *testing.T) {
	path := writeFile(t, "frame.yaml", []byte(frameScene))
	pngPath := filepath.Join(t.TempDir(), "frame.png")

	_, err := run(t, "render", path, "--png", pngPath)
	require.NoError(t, err)

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.Width)
	assert.Equal(t, 65, cfg.Height)
}

func TestRenderBadColor(t *testing.T) {
	path := writeFile(t, "frame.yaml", []byte(frameScene))
	_, err := run(t, "render", path, "--png", filepath.Join(t.TempDir(), "x.png"), "--fg", "nope")
	assert.Error(t, err)
}

func TestRenderInvalidScene(t *testing.T) {
	path := writeFile(t, "bad.yaml", []byte("width: 2\nheight: 2\nlayers:\n  - shapes:\n      - {kind: spiral}\n"))
	_, err := run(t, "render", path)
	assert.ErrorContains(t, err, "invalid shape")
}

func TestWritesDefaultConfig(t *testing.T) {
	_, err := run(t, "version")
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	data, err := os.ReadFile(filepath.Join(home, ".termgl", "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: ansi")
	assert.Equal(t, 80, viper.GetInt("image.width"))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "termgl dev\n", out)
}

func TestImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		img.Set(0, y, color.White)
		img.Set(3, y, color.White)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := writeFile(t, "bars.png", buf.Bytes())

	out, err := run(t, "image", path, "--width", "4")
	require.NoError(t, err)
	assert.Equal(t, "@  @\n@  @\n", out)

	scenePath := writeFile(t, "frame.yaml", []byte(frameScene))
	out, err = run(t, "image", path, "--width", "4", "--over", scenePath, "--x", "3", "--y", "2")
	require.NoError(t, err)
	assert.Equal(t, "..........\n.#######..\n.#.@..@#..\n.#.@##@#..\n..........\n", out)
}

func TestImageErrors(t *testing.T) {
	_, err := run(t, "image", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	path := writeFile(t, "junk.png", []byte("not an image"))
	_, err = run(t, "image", path)
	assert.ErrorContains(t, err, "decode image")
}

func TestArgsRequired(t *testing.T) {
	for _, cmd := range []string{"render", "draw", "serve", "image"} {
		t.Run(cmd, func(t *testing.T) {
			_, err := run(t, cmd)
			assert.Error(t, err)
		})
	}
}

func TestNamedConfigNotCreated(t *testing.T) {
	home := t.TempDir()
	_, err := runIn(t, home, "--config", "other.yml", "version")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(home, ".termgl", "other.yml"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
	_, statErr = os.Stat(filepath.Join(home, ".termgl", "config.yml"))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "default config is only bootstrapped for the default name")
}

func TestNamedConfigRead(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".termgl")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("image:\n  width: 33\n"), 0o644))

	_, err := runIn(t, home, "--config", "other.yml", "version")
	require.NoError(t, err)
	assert.Equal(t, 33, viper.GetInt("image.width"))
}
