//go:build !unix

package mapped

import "os"

// Reads the whole file into memory where mmap is unavailable
func mapFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func unmapFile(data []byte) error {
	return nil
}
