package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tunecard/internal/services"
)

// Snapshot lines join fields with the ASCII unit separator, a character
// that cannot appear in scraped titles, so no quoting or escaping is needed.
const fieldSeparator = "\x1f"

const fieldsPerLine = 7

// SaveSnapshot writes all songs to path, replacing any previous snapshot.
// The write goes through a temp file so a crash cannot leave a torn file.
func SaveSnapshot(path string, songs []Song) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return services.Wrap(services.ErrValidation, "catalog", "save snapshot", "create state directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return services.Wrap(services.ErrValidation, "catalog", "save snapshot", "create temp file", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	writer := bufio.NewWriter(tmp)
	for _, song := range songs {
		fields := []string{
			song.Artist,
			song.Title,
			strconv.Itoa(song.ReleaseYear),
			strconv.Itoa(song.FallbackYear),
			song.SourceID,
			song.RawTitle,
			song.MatchedTitle,
		}
		if _, err := writer.WriteString(strings.Join(fields, fieldSeparator) + "\n"); err != nil {
			return services.Wrap(services.ErrValidation, "catalog", "save snapshot", "write record", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return services.Wrap(services.ErrValidation, "catalog", "save snapshot", "flush records", err)
	}
	if err := tmp.Close(); err != nil {
		return services.Wrap(services.ErrValidation, "catalog", "save snapshot", "close temp file", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return services.Wrap(services.ErrValidation, "catalog", "save snapshot", "replace snapshot", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot back. Lines with the wrong field count are
// skipped and counted so the caller can warn about them; a missing file is
// an error because resuming without state is a different operation.
func LoadSnapshot(path string) ([]Song, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, services.Wrap(services.ErrValidation, "catalog", "load snapshot", fmt.Sprintf("open %s", path), err)
	}
	defer file.Close()

	var songs []Song
	skipped := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, fieldSeparator)
		if len(fields) != fieldsPerLine {
			skipped++
			continue
		}
		releaseYear, err := strconv.Atoi(fields[2])
		if err != nil {
			skipped++
			continue
		}
		fallbackYear, err := strconv.Atoi(fields[3])
		if err != nil {
			skipped++
			continue
		}
		songs = append(songs, Song{
			Artist:       fields[0],
			Title:        fields[1],
			ReleaseYear:  releaseYear,
			FallbackYear: fallbackYear,
			SourceID:     fields[4],
			RawTitle:     fields[5],
			MatchedTitle: fields[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, services.Wrap(services.ErrValidation, "catalog", "load snapshot", "read records", err)
	}
	return songs, skipped, nil
}
