package parser

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/time/rate"
)

// Progress reports byte-offset advancement through one file, published to
// the CLI collaborator (spec.md §4.4, §6). It deliberately carries no
// rendering concern — that lives in cmd/efd.
type Progress struct {
	File       string
	BytesRead  int64
	TotalBytes int64
}

const terminatorCode = "9999"

// ReadFile implements spec.md §4.4: decode each line (UTF-8 first,
// Windows-1252 fallback), tokenize, coerce, and send well-formed records to
// out in source order. A structure error aborts the file; an unknown
// record code only logs and skips (spec.md §4.9). Reading stops at the
// first 9999 line; trailing bytes are discarded without error.
func ReadFile(ctx context.Context, path string, out chan<- *Record, progress chan<- Progress) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	total := info.Size()

	log := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	limiter := rate.NewLimiter(rate.Limit(20), 1) // at most 20 progress ticks/sec

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var offset int64
	lineNo := 0

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		raw := scanner.Bytes()
		lineNo++
		offset += int64(len(raw)) + 1

		if progress != nil && (limiter.Allow() || len(raw) == 0) {
			select {
			case progress <- Progress{File: path, BytesRead: offset, TotalBytes: total}:
			default:
			}
		}

		decoded, err := decodeLine(raw)
		if err != nil {
			return &StructureError{File: path, Line: lineNo, Err: err}
		}

		code, fields, ok := Tokenize(decoded)
		if !ok {
			continue
		}

		if code == terminatorCode {
			if progress != nil {
				select {
				case progress <- Progress{File: path, BytesRead: total, TotalBytes: total}:
				default:
				}
			}
			return nil
		}

		rec, err := Coerce(path, lineNo, code, fields)
		if err != nil {
			if err == ErrUnknownRecord {
				log.Warn().Int("line", lineNo).Str("code", code).Msg("unknown record code, skipping")
				continue
			}
			return err
		}

		select {
		case out <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return nil
}

// decodeLine never mixes encodings within one decoded line: UTF-8 is tried
// first, Windows-1252 only as a whole-line fallback (spec.md §4.4).
func decodeLine(raw []byte) ([]byte, error) {
	if utf8.Valid(raw) {
		return raw, nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("line is valid under neither UTF-8 nor Windows-1252: %w", err)
	}
	return decoded, nil
}
