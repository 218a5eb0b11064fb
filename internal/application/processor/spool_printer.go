package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hospital-admin/internal/domain/entity"
)

// formFeed separates copies so the spooler cuts between them.
const formFeed = "\f"

// SpoolPrinter writes each job to <dir>/<job id>.txt for the print spooler to pick up.
type SpoolPrinter struct {
	dir string
}

func NewSpoolPrinter(dir string) (*SpoolPrinter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create spool dir %s: %w", dir, err)
	}
	return &SpoolPrinter{dir: dir}, nil
}

// Print writes the job atomically. Redelivered jobs overwrite their own file.
func (p *SpoolPrinter) Print(ctx context.Context, job entity.PrintJob, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	copies := make([]string, job.Copies)
	for i := range copies {
		copies[i] = text
	}

	name := filepath.Join(p.dir, filepath.Base(job.ID)+".txt")
	tmp, err := os.CreateTemp(p.dir, ".job-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strings.Join(copies, formFeed)); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return "", err
	}
	return name, nil
}
