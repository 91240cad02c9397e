// Package action turns an extracted record into user-visible effects:
// the console summary, the canonical target filename, and the copy or
// rename of the source PDF.
package action

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matsen/renamepdf/internal/authorname"
	"github.com/matsen/renamepdf/internal/bib"
)

// Summary is the one-line description printed for every processed
// document, whatever output mode is active.
func Summary(rec *bib.Record) string {
	names := authorname.Format(rec.Names())
	return fmt.Sprintf("We're looking at “%s” by %s from %s in %s.",
		rec.Title.Value(), names.File, rec.Year.Value(), rec.Venue())
}

// TargetName builds the canonical filename for a record:
// "Lastname (Year) - Title.pdf", with multi-author name lists joined
// the way a human would write them.
func TargetName(rec *bib.Record) string {
	names := authorname.Format(rec.Names())
	name := fmt.Sprintf("%s (%s) - %s.pdf",
		names.File, rec.Year.Value(), rec.Title.Value())
	return sanitize(name)
}

// sanitize strips characters that are path separators or otherwise
// unsafe in filenames across platforms. A title with a colon or slash
// must still yield a single valid path element.
func sanitize(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", " -",
		"*", "",
		"?", "",
		"\"", "'",
		"<", "",
		">", "",
		"|", "-",
	)
	name = replacer.Replace(name)
	return strings.TrimSpace(name)
}

// Copy writes the source PDF under its canonical name in the same
// directory, leaving the original in place. Returns the new path.
func Copy(src string, rec *bib.Record) (string, error) {
	dst := filepath.Join(filepath.Dir(src), TargetName(rec))
	if dst == src {
		return dst, nil
	}
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("copying %s: %w", src, err)
	}
	return dst, nil
}

// Rename moves the source PDF to its canonical name in the same
// directory. Falls back to copy-and-remove when the rename crosses a
// filesystem boundary.
func Rename(src string, rec *bib.Record) (string, error) {
	dst := filepath.Join(filepath.Dir(src), TargetName(rec))
	if dst == src {
		return dst, nil
	}
	if err := os.Rename(src, dst); err != nil {
		if cerr := copyFile(src, dst); cerr != nil {
			return "", fmt.Errorf("renaming %s: %w", src, err)
		}
		if rerr := os.Remove(src); rerr != nil {
			return "", fmt.Errorf("removing %s after copy: %w", src, rerr)
		}
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
