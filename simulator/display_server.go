package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"net"
	"os"
	"sync"
	"time"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
	"github.com/rook-computer/sharpmenu/internal/state"
	"github.com/rook-computer/sharpmenu/internal/wire"
)

const (
	connDeadline = 5 * time.Second

	// maxTextSize bounds the glyph masks freetype allocates for TEXT.
	maxTextSize = 4 * fb.Height
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// DisplayServer emulates the panel's display server on a unix socket.
// It answers one command per connection and paints into Store.
type DisplayServer struct {
	Path   string
	Store  *state.Store
	Logger logger

	mu       sync.Mutex
	ln       net.Listener
	wg       sync.WaitGroup
	paintMu  sync.Mutex
	images   map[string]image.Image
	ttFont   *truetype.Font
	fontErr  error
	fontOnce sync.Once
}

func NewDisplayServer(path string, store *state.Store, l logger) *DisplayServer {
	return &DisplayServer{Path: path, Store: store, Logger: l}
}

// Listen binds the socket, replacing a stale one left by a previous run.
func (s *DisplayServer) Listen() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale socket: %w", err)
	}
	ln, err := net.Listen("unix", s.Path)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Path, err)
	}
	if err := os.Chmod(s.Path, 0o666); err != nil {
		_ = ln.Close()
		return fmt.Errorf("chmod socket: %w", err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	return nil
}

// Serve accepts connections until Close is called.
func (s *DisplayServer) Serve() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return errors.New("display server is not listening")
	}
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

func (s *DisplayServer) Close() error {
	s.mu.Lock()
	ln := s.ln
	s.ln = nil
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	err := ln.Close()
	s.wg.Wait()
	_ = os.Remove(s.Path)
	return err
}

func (s *DisplayServer) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(connDeadline))

	req, err := wire.ReadRequest(conn)
	if err != nil {
		s.logf().Errorf("display", "read request: %v", err)
		_ = wire.WriteStatus(conn, wire.StatusError)
		return
	}

	status := wire.StatusOK
	s.paintMu.Lock()
	err = s.apply(req)
	s.paintMu.Unlock()
	if err != nil {
		status = wire.StatusError
		if errors.Is(err, errUnknownCommand) {
			status = wire.StatusUnknown
		}
		s.logf().Errorf("display", "%s: %v", req.Command, err)
	}
	s.Store.RecordCommand(req.Command, status)
	if err := wire.WriteStatus(conn, status); err != nil {
		s.logf().Errorf("display", "write status: %v", err)
	}
}

var errUnknownCommand = errors.New("unknown command")

func (s *DisplayServer) apply(req wire.Request) error {
	switch req.Command {
	case wire.CmdClear:
		s.Store.Clear()
		return nil

	case wire.CmdRawBuf:
		if len(req.Payload) != fb.Size {
			return fmt.Errorf("frame is %d bytes, want %d", len(req.Payload), fb.Size)
		}
		s.Store.SetFrame(req.Payload)
		return nil

	case wire.CmdImage:
		x, y, path, err := wire.ParseImage(req.Payload)
		if err != nil {
			return err
		}
		img, err := s.loadImage(path)
		if err != nil {
			return err
		}
		return s.paint(func(frame *fb.Buffer) error {
			render.PlaceImage(frame, img, x, y)
			return nil
		})

	case wire.CmdText:
		x, y, size, text, err := wire.ParseText(req.Payload)
		if err != nil {
			return err
		}
		return s.paint(func(frame *fb.Buffer) error { return s.drawText(frame, x, y, size, text) })

	case wire.CmdRect:
		x, y, w, h, fill, err := wire.ParseRect(req.Payload)
		if err != nil {
			return err
		}
		// The server's rectangle is inclusive of its far corner.
		return s.paint(func(frame *fb.Buffer) error {
			render.DrawRect(frame, x, y, w+1, h+1, true, fill)
			return nil
		})

	default:
		return fmt.Errorf("%w %q", errUnknownCommand, req.Command)
	}
}

// paint draws onto a blank frame and shows it. Drawing commands replace
// whatever was on screen.
func (s *DisplayServer) paint(fn func(frame *fb.Buffer) error) error {
	frame := fb.New()
	defer frame.Release()
	if err := fn(frame); err != nil {
		return err
	}
	s.Store.SetFrame(frame.Bytes())
	return nil
}

// loadImage decodes path once; callers hold paintMu.
func (s *DisplayServer) loadImage(path string) (image.Image, error) {
	if img, ok := s.images[path]; ok {
		return img, nil
	}
	img, err := render.LoadImage(path)
	if err != nil {
		return nil, err
	}
	if s.images == nil {
		s.images = make(map[string]image.Image)
	}
	s.images[path] = img
	return img, nil
}

func (s *DisplayServer) drawText(frame *fb.Buffer, x, y, size int, text string) error {
	if size <= 0 || size > maxTextSize {
		return fmt.Errorf("invalid text size %d", size)
	}
	s.fontOnce.Do(func() {
		s.ttFont, s.fontErr = truetype.Parse(goregular.TTF)
	})
	if s.fontErr != nil {
		return fmt.Errorf("parse font: %w", s.fontErr)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(s.ttFont)
	ctx.SetFontSize(float64(size))
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(frame.Bounds())
	ctx.SetDst(frame)
	ctx.SetSrc(image.NewUniform(color.Black))

	// y names the top of the text line; freetype wants the baseline.
	_, err := ctx.DrawString(text, freetype.Pt(x, y+size))
	return err
}

func (s *DisplayServer) logf() logger {
	if s.Logger == nil {
		return nopLogger{}
	}
	return s.Logger
}

type nopLogger struct{}

func (nopLogger) Infof(string, string, ...interface{})  {}
func (nopLogger) Errorf(string, string, ...interface{}) {}
