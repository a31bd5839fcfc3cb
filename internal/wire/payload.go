package wire

import (
	"encoding/binary"
	"fmt"
)

func putInts(values ...int) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(int32(v)))
	}
	return out
}

func getInts(p []byte, n int) ([]int, error) {
	if len(p) < 4*n {
		return nil, fmt.Errorf("payload has %d bytes, need at least %d", len(p), 4*n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = int(int32(binary.LittleEndian.Uint32(p[4*i:])))
	}
	return out, nil
}

// ImagePayload encodes x, y and a file path. -1 on an axis means centered.
func ImagePayload(x, y int, path string) []byte {
	return append(putInts(x, y), path...)
}

func ParseImage(p []byte) (x, y int, path string, err error) {
	v, err := getInts(p, 2)
	if err != nil {
		return 0, 0, "", err
	}
	return v[0], v[1], string(p[8:]), nil
}

func TextPayload(x, y, size int, text string) []byte {
	return append(putInts(x, y, size), text...)
}

func ParseText(p []byte) (x, y, size int, text string, err error) {
	v, err := getInts(p, 3)
	if err != nil {
		return 0, 0, 0, "", err
	}
	return v[0], v[1], v[2], string(p[12:]), nil
}

func RectPayload(x, y, w, h int, fill bool) []byte {
	p := putInts(x, y, w, h)
	if fill {
		return append(p, 1)
	}
	return append(p, 0)
}

func ParseRect(p []byte) (x, y, w, h int, fill bool, err error) {
	v, err := getInts(p, 4)
	if err != nil {
		return 0, 0, 0, 0, false, err
	}
	if len(p) < 17 {
		return 0, 0, 0, 0, false, fmt.Errorf("rect payload has %d bytes, need 17", len(p))
	}
	return v[0], v[1], v[2], v[3], p[16] == 1, nil
}
