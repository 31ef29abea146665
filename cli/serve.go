package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/termgl/scene"
	"github.com/lixenwraith/termgl/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve <scene>",
	Short: "Serve a scene to SSH clients",
	Long:  longServe,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scene.Load(args[0])
		if err != nil {
			return err
		}

		srv := server.New(
			viper.GetString("serve.addr"),
			viper.GetString("serve.host_key"),
			sc,
			log.WithPrefix("ssh"),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			if errors.Is(err, ssh.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":2222", "address to listen on")
	serveCmd.Flags().String("host-key", "", "PEM host key file (ephemeral key when empty)")
	viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("serve.host_key", serveCmd.Flags().Lookup("host-key"))
}

var longServe = `
Starts an SSH server that draws the scene into every connecting PTY session,
clipped to the client window and redrawn when it is resized. Any key ends the
session. Connect with: ssh -t -p 2222 localhost
`
