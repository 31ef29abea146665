/*
Package cli implements the termgl command-line interface.
It renders scene files to stdout or PNG, draws them on the live terminal,
serves them over SSH and converts images into character surfaces.
*/
package cli

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/*
Embed a mini filesystem into the binary to hold the default config file.
It is written to the home directory of the user on first run so it can be edited.
*/
//go:embed cfg/*
var embedded embed.FS

// defaultConfigName is the only config file bootstrapped from the embedded default
const defaultConfigName = "config.yml"

var (
	projectName = "termgl"
	cfgFile     string
	logLevel    string

	rootCmd = &cobra.Command{
		Use:           projectName,
		Short:         "Rasterize shapes onto character grids and terminals",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

/*
Execute runs the root command. Errors are logged and returned so main can set the exit code.
*/
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		defaultConfigName,
		"config file (default is $HOME/."+projectName+"/config.yml)",
	)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

/*
initConfig writes the default config on first run, reads the config file and
applies the log level. A bare file name resolves inside $HOME/.termgl, a path is read as is.
Only the default name is created when missing; other names must already exist.
*/
func initConfig() {
	viper.SetEnvPrefix(strings.ToUpper(projectName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if strings.ContainsRune(cfgFile, filepath.Separator) {
		viper.SetConfigFile(cfgFile)
	} else {
		if cfgFile == defaultConfigName {
			if err := writeConfig(); err != nil {
				log.Warn("default config not written", "err", err)
			}
		}
		home, _ := os.UserHomeDir()
		viper.SetConfigFile(filepath.Join(home, "."+projectName, cfgFile))
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Warn("config not loaded, using defaults", "err", err)
	}

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.Warn("invalid log level", "level", viper.GetString("log.level"))
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

/*
writeConfig copies the embedded default config into $HOME/.termgl/config.yml unless one exists.
*/
func writeConfig() error {
	var (
		home, _ = os.UserHomeDir()
		fh      fs.File
		buf     bytes.Buffer
		err     error
	)

	configDir := filepath.Join(home, "."+projectName)
	if err = os.MkdirAll(configDir, os.ModePerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fullPath := filepath.Join(configDir, defaultConfigName)
	if fileExists(fullPath) {
		return nil
	}

	if fh, err = embedded.Open("cfg/config.yml"); err != nil {
		return fmt.Errorf("open embedded config: %w", err)
	}
	defer fh.Close()

	if _, err = io.Copy(&buf, fh); err != nil {
		return fmt.Errorf("read embedded config: %w", err)
	}
	if err = os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	log.Info("wrote config file", "path", fullPath)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

var longRoot = `
termgl draws points, lines, rectangles, ellipses, polygons and text onto
character grids. Scenes are described in YAML, TOML or JSON files and can be
printed, snapshotted to PNG, drawn on the live terminal or served over SSH.
`
