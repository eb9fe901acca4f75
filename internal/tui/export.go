package tui

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jasonyi-dev/ganttrack/models"
)

// exportCSV writes the project's tasks to a CSV file in the working
// directory and returns its path. Dependencies are exported as the
// one-based row numbers of the tasks they point at.
func exportCSV(projectName string, tasks []models.Task) (string, error) {
	path := fmt.Sprintf("timeline-%s-%s.csv", sanitizeFileName(projectName), time.Now().UTC().Format("2006-01-02"))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	byUUID := make(map[string]int, len(tasks))
	for _, t := range tasks {
		byUUID[t.TaskUUID] = t.Row + 1
	}

	w := csv.NewWriter(f)
	if err = w.Write([]string{"row", "name", "type", "start", "end", "completed", "colour", "dependencies"}); err != nil {
		return "", fmt.Errorf("write export header: %w", err)
	}
	for _, t := range tasks {
		deps := make([]string, 0, len(t.Dependencies))
		for _, dep := range t.Dependencies {
			if row, ok := byUUID[dep]; ok {
				deps = append(deps, strconv.Itoa(row))
			}
		}
		record := []string{
			strconv.Itoa(t.Row + 1),
			t.Name,
			t.Type,
			formatDay(t.StartDate),
			formatDay(t.EndDate),
			strconv.FormatBool(t.Completed),
			t.Colour,
			strings.Join(deps, " "),
		}
		if err = w.Write(record); err != nil {
			return "", fmt.Errorf("write export record: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return "", fmt.Errorf("flush export: %w", err)
	}
	return path, nil
}

func sanitizeFileName(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	var b strings.Builder
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "project"
	}
	return b.String()
}
