package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"deepfloor/internal/gamemap"
)

// HeaderVersion is bumped whenever Header changes shape.
const HeaderVersion = 1

const headerKey = "session"

// Header is what a later run needs to continue this one: the seed every
// stored floor was generated with and where the viewer stood.
type Header struct {
	Version   int
	WorldSeed int64
	Coord     gamemap.Coord
	Viewer    gamemap.Point
}

func encodeHeader(h Header) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeHeader(data []byte) (Header, error) {
	var h Header
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&h); err != nil {
		return h, err
	}
	if h.Version != HeaderVersion {
		return h, fmt.Errorf("header version %d, want %d", h.Version, HeaderVersion)
	}
	if h.Coord.Y < 0 {
		return h, fmt.Errorf("header coord %s above the surface", h.Coord)
	}
	return h, nil
}
