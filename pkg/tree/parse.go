package tree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// maxLineSize bounds a single input record. du paths are far shorter.
const maxLineSize = 1 << 20

// ParseOptions configures [Parse].
type ParseOptions struct {
	// Separator splits a path into segments. Defaults to the platform
	// path separator.
	Separator string

	// OnSkip receives every line that is not a valid record, trimmed of
	// surrounding whitespace. Nil discards them silently.
	OnSkip func(line string)
}

// ParseStats summarizes a [Parse] run.
type ParseStats struct {
	Lines   int // lines read
	Records int // records added to the tree
	Skipped int // malformed lines reported through OnSkip
	Nodes   int // nodes created, including the synthetic root
}

// ParseRecord splits one input line into its size and path.
//
// A valid line is an integer, whitespace, and a non-empty remainder,
// after trimming surrounding whitespace. Whitespace inside the remainder
// is preserved. Negative sizes are rejected so that input can never
// produce an [Unresolved] size.
func ParseRecord(line string) (size int64, path string, ok bool) {
	s := strings.TrimSpace(line)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return 0, "", false
	}
	size, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil || size < 0 {
		return 0, "", false
	}
	path = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	if path == "" {
		return 0, "", false
	}
	return size, path, true
}

// Parse reads du-style records from r and returns the finished tree.
//
// Records that normalize to an empty path are dropped without being
// reported; lines that do not parse are passed to opts.OnSkip. The only
// error returned is a failure to read r.
func Parse(r io.Reader, opts ParseOptions) (*Node, ParseStats, error) {
	sep := opts.Separator
	if sep == "" {
		sep = string(os.PathSeparator)
	}

	var stats ParseStats
	b := NewBuilder()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		stats.Lines++

		size, path, ok := ParseRecord(line)
		if !ok {
			stats.Skipped++
			if opts.OnSkip != nil {
				opts.OnSkip(strings.TrimSpace(line))
			}
			continue
		}
		segments := SplitPath(path, sep)
		if len(segments) == 0 {
			continue
		}
		b.Add(size, segments)
		stats.Records++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("read records: %w", err)
	}

	root := b.Root()
	stats.Nodes = b.Nodes()
	return root, stats, nil
}
