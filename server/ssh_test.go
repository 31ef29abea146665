package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/lixenwraith/termgl/scene"
)

const testScene = `
width: 60
height: 5
layers:
  - shapes:
      - {kind: text, x: 0, y: 0, text: "hi", color: red}
      - {kind: text, x: 30, y: 1, text: "far"}
`

// syncBuffer collects session output from the reader goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func startServer(t *testing.T) string {
	t.Helper()
	sc, err := scene.Parse([]byte(testScene), "yaml")
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New("", "", sc, log.New(io.Discard))
	go srv.Serve(l)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	})
	return l.Addr().String()
}

func dial(t *testing.T, addr string) *gossh.Session {
	t.Helper()
	client, err := gossh.Dial("tcp", addr, &gossh.ClientConfig{
		User:            "tester",
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	sess, err := client.NewSession()
	require.NoError(t, err)
	return sess
}

func waitClosed(t *testing.T, sess *gossh.Session) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		sess.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("session did not end")
	}
}

func TestSessionDrawsAndResizes(t *testing.T) {
	sess := dial(t, startServer(t))

	out := &syncBuffer{}
	sess.Stdout = out
	stdin, err := sess.StdinPipe()
	require.NoError(t, err)

	require.NoError(t, sess.RequestPty("xterm-256color", 5, 20, gossh.TerminalModes{}))
	require.NoError(t, sess.Shell())

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "\x1b[1;1H\x1b[31mh\x1b[0m")
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotContains(t, out.String(), "f", "text beyond the window must be clipped")

	require.NoError(t, sess.WindowChange(5, 40))
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "\x1b[2;31H\x1b[0mf")
	}, 5*time.Second, 10*time.Millisecond)

	_, err = stdin.Write([]byte("q"))
	require.NoError(t, err)
	waitClosed(t, sess)
	assert.Contains(t, out.String(), "\x1b[?25h", "cursor restored on exit")
}

func TestSessionRequiresPty(t *testing.T) {
	sess := dial(t, startServer(t))
	out, err := sess.CombinedOutput("")
	assert.Error(t, err, "non-zero exit status")
	assert.Contains(t, string(out), "PTY required")
}

func TestSessionEnv(t *testing.T) {
	env := sessionEnv("xterm", []string{"COLORTERM=truecolor", "BROKEN"})
	assert.Equal(t, "truecolor", env("COLORTERM"))
	assert.Equal(t, "xterm", env("TERM"))
	assert.Empty(t, env("BROKEN"))

	env = sessionEnv("xterm", []string{"TERM=xterm-direct"})
	assert.Equal(t, "xterm-direct", env("TERM"))
}
