package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <outDir>/<experiment>/<runID> to hold the CSV files of one run.
func NewWriter(outDir, experiment, runID string) (*Writer, error) {
	baseDir := filepath.Join(outDir, experiment, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"run_id", "game", "agent", "opponent", "seed", "score", "win_rate_point", "winner",
		"start_time", "end_time", "duration", "total_moves",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.RunID,
			strconv.Itoa(record.Game),
			record.Agent,
			record.Opponent,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(int(record.Score)),
			strconv.FormatFloat(record.WinRatePoint, 'f', -1, 64),
			record.Winner,
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"run_id", "game", "step", "player", "action", "duration", "expansions", "steps", "time_over"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.RunID,
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action.String(),
			record.Duration.String(),
			strconv.FormatInt(record.Expansions, 10),
			strconv.FormatInt(record.Steps, 10),
			strconv.FormatBool(record.TimeOver),
		})
	}
	return w.write("moves.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
