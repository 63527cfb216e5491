package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (w *implWriter) Write(ctx context.Context, r Report) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	mdPath := filepath.Join(w.dir, r.Title+".md")
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(r)), 0644); err != nil {
		return nil, fmt.Errorf("write markdown report: %w", err)
	}
	written := []string{mdPath}

	if w.docx {
		docxPath := filepath.Join(w.dir, r.Title+".docx")
		if err := writeDocx(r, docxPath); err != nil {
			return written, fmt.Errorf("write docx report: %w", err)
		}
		written = append(written, docxPath)
	}

	w.logger.Info(ctx, "Report written: %s", strings.Join(written, ", "))
	return written, nil
}

func renderMarkdown(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "_%s_\n\n", r.CreatedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString("## Summary\n\n")
	b.WriteString(strings.TrimSpace(r.Summary))
	b.WriteString("\n")
	if t := strings.TrimSpace(r.Transcript); t != "" {
		b.WriteString("\n## Transcript\n\n")
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String()
}
