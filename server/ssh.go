// Package server serves a scene to SSH clients
//
// Every session must request a PTY. The scene is drawn through the colored
// front-end, clipped to the client window, redrawn on every window change,
// and the session ends on the first input byte.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gliderlabs/ssh"

	"github.com/lixenwraith/termgl/draw"
	"github.com/lixenwraith/termgl/scene"
	"github.com/lixenwraith/termgl/terminal"
)

// Server wraps the SSH listener
type Server struct {
	addr    string
	hostKey string
	scene   *scene.Scene
	logger  *log.Logger
	srv     *ssh.Server
}

// New creates a server for sc bound to addr
// Empty hostKeyFile uses an ephemeral key generated at start
func New(addr, hostKeyFile string, sc *scene.Scene, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		addr:    addr,
		hostKey: hostKeyFile,
		scene:   sc,
		logger:  logger,
	}
	s.srv = &ssh.Server{
		Addr:    addr,
		Handler: s.handleSession,
	}
	return s
}

func (s *Server) setup() error {
	if s.hostKey == "" {
		return nil
	}
	if err := s.srv.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and blocks until shutdown
func (s *Server) ListenAndServe() error {
	if err := s.setup(); err != nil {
		return err
	}
	s.logger.Info("ssh server listening", "addr", s.addr)
	return s.srv.ListenAndServe()
}

// Serve accepts connections on l and blocks until shutdown
func (s *Server) Serve(l net.Listener) error {
	if err := s.setup(); err != nil {
		return err
	}
	s.logger.Info("ssh server listening", "addr", l.Addr().String())
	return s.srv.Serve(l)
}

// Shutdown stops accepting connections and waits for sessions to end or ctx to expire
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		io.WriteString(sess, "Error: PTY required. Use: ssh -t ...\n")
		sess.Exit(1)
		return
	}

	user := sess.User()
	if user == "" {
		user = "anonymous"
	}
	logger := s.logger.With("user", user, "remote", sess.RemoteAddr().String())

	backend := terminal.NewWriterBackend(sess, ptyReq.Window.Width, ptyReq.Window.Height)
	mode := terminal.DetectColorModeEnv(sessionEnv(ptyReq.Term, sess.Environ()))
	term := terminal.New(backend, mode)
	front := draw.NewColored(term)

	logger.Info("session connected", "term", ptyReq.Term, "width", ptyReq.Window.Width, "height", ptyReq.Window.Height, "colors", mode)
	defer logger.Info("session disconnected")

	term.SetCursorVisible(false)
	defer func() {
		term.ClearScreen()
		term.SetCursorVisible(true)
		term.Flush()
	}()

	redraw := func() {
		front.Clear()
		s.scene.Draw(front.Sink(), terminal.Reset)
		if err := front.Flush(); err != nil {
			logger.Debug("flush failed", "err", err)
		}
	}
	redraw()

	// Any byte or EOF ends the session
	quit := make(chan struct{})
	go func() {
		buf := make([]byte, 64)
		sess.Read(buf)
		close(quit)
	}()

	for {
		select {
		case <-quit:
			return
		case <-sess.Context().Done():
			return
		case win, ok := <-winCh:
			if !ok {
				winCh = nil
				continue
			}
			backend.SetSize(win.Width, win.Height)
			logger.Debug("window resized", "width", win.Width, "height", win.Height)
			redraw()
		}
	}
}

// sessionEnv builds an environment lookup from the client's variables and PTY term
func sessionEnv(ptyTerm string, environ []string) func(string) string {
	env := make(map[string]string, len(environ)+1)
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	if _, ok := env["TERM"]; !ok {
		env["TERM"] = ptyTerm
	}
	return func(key string) string { return env[key] }
}
