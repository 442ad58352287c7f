// Package uploads stores contact pictures on local disk and hands back the
// generated file name they are served under.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxPictureBytes = 2 << 20 // 2 MiB

var (
	ErrExtension = errors.New("only image files (.jpg, .jpeg, .png) are allowed")
	ErrTooLarge  = errors.New("picture exceeds the 2MB limit")

	allowedExt = map[string]struct{}{
		".jpg":  {},
		".jpeg": {},
		".png":  {},
	}
)

type Store struct {
	logger *zap.Logger
	dir    string
}

func New(logger *zap.Logger, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	logger.Info("uploads dir ready", zap.String("dir", dir))

	return &Store{logger: logger, dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save validates the declared size and original extension, then writes the
// stream under a unique generated name and returns that name.
func (s *Store) Save(originalName string, size int64, r io.Reader) (string, error) {
	if size > MaxPictureBytes {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(sanitizeFileName(originalName)))
	if _, ok := allowedExt[ext]; !ok {
		return "", ErrExtension
	}

	name := genFileName(ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create picture file: %w", err)
	}
	defer dst.Close()

	// the size header is client-declared, so cap the copy as well
	if _, err = io.Copy(dst, io.LimitReader(r, MaxPictureBytes+1)); err != nil {
		return "", fmt.Errorf("write picture file: %w", err)
	}

	s.logger.Info("picture stored", zap.String("file", name))

	return name, nil
}

// Remove deletes a stored picture; callers use it to roll back when the
// contact row the picture belongs to never made it into the store.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// genFileName: "<unix-millis>-<random-suffix><ext>"
func genFileName(ext string) string {
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

// sanitizeFileName makes the client-supplied name ASCII standard before the
// extension is trusted.
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return unicode.ToLower(r)
		default:
			return '-'
		}
	}, s)

	return strings.Trim(s, "-")
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
