package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"reversi/game"
)

type GameRecord struct {
	ID        int
	Outcome   game.Outcome
	Black     int // Final black disc count
	White     int // Final white disc count
	Duration  time.Duration
	ThinkTime time.Duration
}

type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	// Each series gets a subfolder named by the current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: dir}, nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "outcome", "black", "white", "duration", "think_time"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Outcome.String(),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			record.Duration.String(),
			record.ThinkTime.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return writer.Error()
}
