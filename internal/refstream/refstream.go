// Package refstream parses the text line format that feeds the
// translator: a decimal virtual address with an optional trailing R/W tag.
// This is external-collaborator territory per spec.md §1 — the core never
// sees text — but a complete repository still needs it, so it lives here
// rather than in cmd, where it can be tested and reused independently of
// the CLI's file handling.
package refstream

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrBadInputLine reports a line that could not be parsed into an
// address. Non-fatal: the caller should skip the line and continue.
var ErrBadInputLine = errors.New("bad input line")

// Parse decodes one line of the reference stream into a virtual address
// and write flag. Trailing whitespace and a trailing '\r' (Windows line
// endings) are tolerated. A trailing single-character tag preceded by a
// space means write if it is "W" (case-sensitive), and read for any other
// letter or its absence. The remaining leading token must be decimal
// digits only.
func Parse(line string) (addr uint16, isWrite bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return 0, false, errors.Wrap(ErrBadInputLine, "empty line")
	}

	token := line
	if idx := strings.LastIndexByte(line, ' '); idx >= 0 {
		token = line[:idx]
		tag := line[idx+1:]
		if tag == "W" {
			isWrite = true
		}
	}

	if token == "" {
		return 0, false, errors.Wrapf(ErrBadInputLine, "missing address in %q", line)
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false, errors.Wrapf(ErrBadInputLine, "non-digit address %q", token)
		}
	}

	v, err := strconv.ParseUint(token, 10, 16)
	if err != nil {
		return 0, false, errors.Wrapf(ErrBadInputLine, "address %q out of range: %v", token, err)
	}
	return uint16(v), isWrite, nil
}
