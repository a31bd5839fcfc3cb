// Package wire encodes the display server protocol.
//
// Every command travels on its own unix-stream connection:
//
//	command  [8]byte   ASCII name, NUL padded
//	length   int32 LE  payload length
//	payload  [length]byte
//
// The server answers with an ASCII status (OK, ERROR or UNKNOWN) and closes.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	CmdClear  = "CLEAR"
	CmdRawBuf = "RAWBUF"
	CmdImage  = "IMAGE"
	CmdText   = "TEXT"
	CmdRect   = "RECT"
)

const (
	StatusOK      = "OK"
	StatusError   = "ERROR"
	StatusUnknown = "UNKNOWN"
)

const (
	commandSize = 8
	headerSize  = commandSize + 4

	// MaxPayload bounds what a server accepts in one request.
	MaxPayload = 1 << 20

	maxStatusSize = 16
)

var (
	ErrShortHeader     = errors.New("short request header")
	ErrPayloadTooLarge = errors.New("payload too large")
)

type Request struct {
	Command string
	Payload []byte
}

// WriteRequest frames req onto w in a single write.
func WriteRequest(w io.Writer, req Request) error {
	if len(req.Command) == 0 || len(req.Command) > commandSize {
		return fmt.Errorf("invalid command name %q", req.Command)
	}
	if len(req.Payload) > MaxPayload {
		return ErrPayloadTooLarge
	}
	frame := make([]byte, headerSize+len(req.Payload))
	copy(frame, req.Command)
	binary.LittleEndian.PutUint32(frame[commandSize:headerSize], uint32(len(req.Payload)))
	copy(frame[headerSize:], req.Payload)
	_, err := w.Write(frame)
	return err
}

// ReadRequest reads one framed request.
func ReadRequest(r io.Reader) (Request, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return Request{}, ErrShortHeader
		}
		return Request{}, err
	}
	length := int32(binary.LittleEndian.Uint32(header[commandSize:]))
	if length < 0 || length > MaxPayload {
		return Request{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, length)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Request{}, fmt.Errorf("read payload: %w", err)
	}
	name := string(bytes.TrimRight(header[:commandSize], "\x00 "))
	return Request{Command: name, Payload: payload}, nil
}

func WriteStatus(w io.Writer, status string) error {
	_, err := io.WriteString(w, status)
	return err
}

// ReadStatus reads the reply until the server closes the connection.
func ReadStatus(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxStatusSize))
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(data)), nil
}
