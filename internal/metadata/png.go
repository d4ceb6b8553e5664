package metadata

import (
	"bytes"
	"encoding/binary"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func isPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngSignature)
}

// pngExifChunk walks the chunk list and returns the payload of the first
// eXIf chunk, which holds a bare TIFF structure.
func pngExifChunk(data []byte) ([]byte, bool) {
	pos := len(pngSignature)
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		kind := string(data[pos+4 : pos+8])
		start := pos + 8
		end := start + length
		if length < 0 || end < start || end+4 > len(data) {
			return nil, false
		}
		switch kind {
		case "eXIf":
			return data[start:end], true
		case "IEND":
			return nil, false
		}
		pos = end + 4 // skip CRC
	}
	return nil, false
}
