package flatten

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// sniffSize is the number of leading bytes inspected by isBinaryFile.
const sniffSize = 512

// isBinaryFile reports whether the first 512 bytes of a file contain a NUL
// byte. Any failure to open or read the file also counts as binary.
func isBinaryFile(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return true
	}
	defer file.Close()

	buffer := make([]byte, sniffSize)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	return bytes.IndexByte(buffer[:n], 0) >= 0
}
