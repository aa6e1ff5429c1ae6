package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type SearchRecord struct {
	Layout     string
	Found      bool
	PathLength int
	Cost       float64
	SearchMetric
}

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type DepthRecord struct {
	Layout string
	Depth  int
	Move   string
	Value  float64
	SearchMetric
}

type MoveRecord struct {
	Game int
	MoveMetric
}

// AgentConfig names a searcher configuration in an experiment.
type AgentConfig struct {
	ID     int
	Config string
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<run id> for the output files of one run.
func NewWriter(root, name string) (*Writer, error) {
	baseDir := filepath.Join(root, name, uuid.NewString())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the writer stores files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"layout", "algorithm", "found", "path_length", "cost", "expanded", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Layout,
			record.Algorithm,
			strconv.FormatBool(record.Found),
			strconv.Itoa(record.PathLength),
			strconv.FormatFloat(record.Cost, 'f', -1, 64),
			strconv.Itoa(record.Expanded),
			record.Duration.String(),
		})
	}
	return w.write("search_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "layout", "agent", "ghosts", "won", "score", "moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Layout,
			record.Agent,
			strconv.Itoa(record.Ghosts),
			strconv.FormatBool(record.Won),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.Itoa(record.Moves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "agent", "move", "score", "algorithm", "expanded", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Agent),
			record.Move,
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			record.Algorithm,
			strconv.Itoa(record.Expanded),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteDepthRecords(records []DepthRecord) error {
	header := []string{"layout", "depth", "algorithm", "move", "value", "expanded", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Layout,
			strconv.Itoa(record.Depth),
			record.Algorithm,
			record.Move,
			strconv.FormatFloat(record.Value, 'f', -1, 64),
			strconv.Itoa(record.Expanded),
			record.Duration.String(),
		})
	}
	return w.write("depth_records.csv", header, rows)
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "config"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{strconv.Itoa(config.ID), config.Config})
	}
	return w.write("agents.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
