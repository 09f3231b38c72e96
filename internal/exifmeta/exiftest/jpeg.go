// Package exiftest builds minimal JPEG files with an EXIF block for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"
)

// EXIF tag IDs used by the renamer.
const (
	TagDateTime uint16 = 0x0132
	TagArtist   uint16 = 0x013B
)

const (
	typeASCII uint16 = 2
	typeShort uint16 = 3
)

// Field is one IFD0 entry.
type Field struct {
	Tag   uint16
	Type  uint16
	Count uint32
	Value []byte
}

// ASCII returns a NUL-terminated string field.
func ASCII(tag uint16, s string) Field {
	v := append([]byte(s), 0)
	return Field{Tag: tag, Type: typeASCII, Count: uint32(len(v)), Value: v}
}

// Short returns a single SHORT field.
func Short(tag uint16, n uint16) Field {
	v := make([]byte, 2)
	binary.LittleEndian.PutUint16(v, n)
	return Field{Tag: tag, Type: typeShort, Count: 1, Value: v}
}

// DateTime returns a DateTime field in EXIF layout, e.g. "2023:03:05 09:05:03".
func DateTime(s string) Field { return ASCII(TagDateTime, s) }

// Artist returns an Artist field.
func Artist(s string) Field { return ASCII(TagArtist, s) }

// JPEG returns a JPEG stream holding only an APP1 EXIF segment whose IFD0
// contains fields.
func JPEG(fields ...Field) []byte {
	tiff := buildTIFF(fields)

	var b bytes.Buffer
	b.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	_ = binary.Write(&b, binary.BigEndian, uint16(2+6+len(tiff)))
	b.WriteString("Exif\x00\x00")
	b.Write(tiff)
	b.Write([]byte{0xFF, 0xD9})
	return b.Bytes()
}

// Write stores JPEG(fields...) at path.
func Write(t testing.TB, path string, fields ...Field) {
	t.Helper()
	if err := os.WriteFile(path, JPEG(fields...), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func buildTIFF(fields []Field) []byte {
	le := binary.LittleEndian
	ifdSize := 2 + 12*len(fields) + 4
	dataOffset := 8 + ifdSize

	var ifd, data bytes.Buffer
	_ = binary.Write(&ifd, le, uint16(len(fields)))
	for _, f := range fields {
		_ = binary.Write(&ifd, le, f.Tag)
		_ = binary.Write(&ifd, le, f.Type)
		_ = binary.Write(&ifd, le, f.Count)
		if len(f.Value) <= 4 {
			inline := make([]byte, 4)
			copy(inline, f.Value)
			ifd.Write(inline)
			continue
		}
		_ = binary.Write(&ifd, le, uint32(dataOffset+data.Len()))
		data.Write(f.Value)
	}
	_ = binary.Write(&ifd, le, uint32(0))

	var out bytes.Buffer
	out.WriteString("II")
	_ = binary.Write(&out, le, uint16(42))
	_ = binary.Write(&out, le, uint32(8))
	out.Write(ifd.Bytes())
	out.Write(data.Bytes())
	return out.Bytes()
}
