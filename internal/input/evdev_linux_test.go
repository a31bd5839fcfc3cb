//go:build linux

package input

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testTvSize = 16

func record(typ, code uint16, value int32) []byte {
	rec := make([]byte, testTvSize+8)
	binary.LittleEndian.PutUint16(rec[testTvSize:], typ)
	binary.LittleEndian.PutUint16(rec[testTvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[testTvSize+4:], uint32(value))
	return rec
}

func TestDecodeEvdev(t *testing.T) {
	var data []byte
	data = append(data, record(evKey, keyDown, keyPressed)...)
	data = append(data, record(0x00, 0, 0)...) // EV_SYN
	data = append(data, record(evKey, keyDown, 0)...)
	data = append(data, record(evKey, keyUp, keyRepeated)...)
	data = append(data, record(evKey, keyEnter, keyRepeated)...)
	data = append(data, record(evKey, keyEnter, keyPressed)...)
	data = append(data, record(evKey, keyEsc, keyPressed)...)
	data = append(data, record(evKey, 30, keyPressed)...) // KEY_A
	data = append(data, 0x01, 0x02)

	got := decodeEvdev(data, testTvSize, testTvSize+8)
	assert.Equal(t, []Event{Down, Up, Commit, Quit}, got)
}

func TestOpenEvdevMissingDevice(t *testing.T) {
	_, err := OpenEvdev("/nonexistent/input/event99")
	assert.Error(t, err)
}
