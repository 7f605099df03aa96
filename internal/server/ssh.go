// Package server lets SSH clients watch the composited display in their
// terminal.
package server

import (
	"fmt"
	"io"
	"log"
	"sync"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"tile-curses/internal/game"
	"tile-curses/internal/render"
)

// Command is a session control key.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdRedraw
)

// SSHServer wraps the SSH listener and frame loop integration.
type SSHServer struct {
	loop    *game.FrameLoop
	addr    string
	hostKey string
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr string, hostKey string, fl *game.FrameLoop) *SSHServer {
	return &SSHServer{
		loop:    fl,
		addr:    addr,
		hostKey: hostKey,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

// termSize is a terminal size shared between the resize goroutine and the
// render loop.
type termSize struct {
	mu   sync.Mutex
	w, h int
}

func (t *termSize) set(w, h int) {
	t.mu.Lock()
	t.w, t.h = w, h
	t.mu.Unlock()
}

func (t *termSize) get() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w, t.h
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	viewerID, frameCh := s.loop.AddViewer(username)
	defer s.loop.RemoveViewer(viewerID)

	size := &termSize{}
	size.set(ptyReq.Window.Width, ptyReq.Window.Height)

	io.WriteString(sess, render.EnableAltScreen)
	io.WriteString(sess, render.HideCursor)
	io.WriteString(sess, render.ClearScreen)
	defer func() {
		io.WriteString(sess, render.Reset)
		io.WriteString(sess, render.ShowCursor)
		io.WriteString(sess, render.DisableAltScreen)
	}()

	quitCh := make(chan struct{})
	redrawCh := make(chan struct{}, 1)

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, cmd := range parseInput(buf[:n]) {
				switch cmd {
				case CmdQuit:
					close(quitCh)
					return
				case CmdRedraw:
					select {
					case redrawCh <- struct{}{}:
					default:
					}
				}
			}
		}
	}()

	go func() {
		for win := range winCh {
			size.set(win.Width, win.Height)
		}
	}()

	streamFrames(sess, frameCh, size, quitCh, redrawCh)
}

// streamFrames renders frames to w until frames closes or quit fires.
func streamFrames(w io.Writer, frames <-chan game.Frame, size *termSize, quit, redraw <-chan struct{}) {
	tw, th := size.get()
	engine := render.NewEngine(tw, th)
	var last game.Frame

	draw := func(f game.Frame) bool {
		tw, th := size.get()
		out := engine.Render(f.Image, tw, th)
		if len(out) == 0 {
			return true
		}
		_, err := io.WriteString(w, out)
		return err == nil
	}

	for {
		select {
		case <-quit:
			return
		case <-redraw:
			if last.Image == nil {
				continue
			}
			tw, th := size.get()
			engine.Resize(tw, th)
			if !draw(last) {
				return
			}
		case f, ok := <-frames:
			if !ok {
				return
			}
			last = f
			if !draw(f) {
				return
			}
		}
	}
}

// parseInput converts raw bytes into session commands: q, Q or Ctrl-C
// quit, Ctrl-L or r redraw. Arrow keys and other escape sequences are
// ignored.
func parseInput(data []byte) []Command {
	var cmds []Command
	i := 0
	for i < len(data) {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'q', 'Q', 3: // 3 is Ctrl-C
			cmds = append(cmds, CmdQuit)
		case 'r', 'R', 12: // 12 is Ctrl-L
			cmds = append(cmds, CmdRedraw)
		}
		i += size
	}
	return cmds
}
