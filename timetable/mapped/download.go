package mapped

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"resty.dev/v3"
)

// Files that must be present at the root of a timetable archive
var requiredFiles = []string{
	stringsFile,
	stationsFile,
	stationAliasesFile,
	platformsFile,
	routesFile,
	transfersFile,
}

// Download a zipped timetable directory from url, extract it into directory
// and open it
func Download(url, directory string) (*FileTimeTable, error) {
	log.Infof("Downloading timetable from %s", url)

	client := resty.New()
	defer client.Close()

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.New("failed to download timetable: " + resp.Status())
	}

	zipBytes, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()
	if err != nil {
		return nil, err
	}

	log.Infof("Extracting timetable into %s", directory)
	if err := extract(zipBytes, directory); err != nil {
		return nil, err
	}

	return Open(directory)
}

// Extracts a zip archive into directory, checking for the required files
func extract(zipBytes []byte, directory string) error {
	zipReader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return err
	}

	present := make(map[string]bool)
	for _, file := range zipReader.File {
		present[file.Name] = true
	}
	for _, name := range requiredFiles {
		if !present[name] {
			return errors.New("missing required timetable file: " + name)
		}
	}

	root, err := filepath.Abs(directory)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}

	for _, file := range zipReader.File {
		target := filepath.Join(root, filepath.FromSlash(file.Name))
		if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
			return fmt.Errorf("archive entry %q escapes %s", file.Name, directory)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to extract %s: %w", file.Name, err)
	}
	return dst.Close()
}
