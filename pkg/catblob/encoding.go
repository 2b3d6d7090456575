package catblob

import (
	"encoding/binary"
	"unicode/utf16"
)

// decodeUTF16LE decodes an exact-length UTF-16LE byte slice. Unlike
// null-terminated fixed fields, blob names carry their length in the
// header, so embedded zero code units are kept.
func decodeUTF16LE(data []byte) string {
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return string(utf16.Decode(u16))
}

// encodeUTF16LE encodes a string as UTF-16LE with no terminator.
func encodeUTF16LE(s string) []byte {
	u16 := utf16.Encode([]rune(s))
	buf := make([]byte, len(u16)*2)
	for i, c := range u16 {
		binary.LittleEndian.PutUint16(buf[i*2:], c)
	}
	return buf
}
