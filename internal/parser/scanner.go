package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// APITag marks the prototypes that belong to the public surface.
const APITag = "VLC_PUBLIC_API"

var enumStartRe = regexp.MustCompile(`^(?:typedef\s+)?enum\b`)

type scanState int

const (
	stateNormal scanState = iota
	stateBlockComment
	stateSimpleComment
	stateAccumulating
)

// Scan reads a header line by line and produces logical declaration
// units: enum typedefs and tagged prototypes, each joined onto one line
// and paired with the documentation comment that preceded it.
//
// Declarations spanning several physical lines are joined with single
// spaces until their terminator is seen; trailing inline comments on
// continuation lines are trimmed. An unterminated comment or declaration
// swallows the rest of the file for that construct; the affected unit is
// dropped without failing the scan.
func Scan(r io.Reader) ([]*Unit, error) {
	var (
		units       []*Unit
		state       = stateNormal
		doc         string // pending documentation buffer
		accumulator string // partial multi-line declaration
		terminator  string
	)

	emit := func(text string) {
		units = append(units, &Unit{Text: text, Doc: doc})
		doc = ""
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := scanner.Text()

		if state == stateBlockComment {
			if strings.HasPrefix(raw, " * ") {
				doc += raw[3:] + "\n"
				continue
			}
			state = stateNormal
			// fall through: the current line ends the comment
		}

		line := strings.TrimSpace(raw)

		// An open declaration takes priority over comment handling:
		// comments inside it are trimmed, never a state change.
		if state == stateAccumulating {
			if idx := strings.Index(line, "/*"); idx >= 0 {
				line = strings.TrimSpace(line[:idx])
			}
			if line == "" {
				continue
			}
			accumulator = accumulator + " " + line
			if strings.HasSuffix(line, terminator) {
				emit(accumulator)
				accumulator = ""
				state = stateNormal
			}
			continue
		}

		// A documentation comment opener resets the pending buffer,
		// keeping any text that follows the marker.
		if lstripped := strings.TrimLeft(raw, " \t"); strings.HasPrefix(lstripped, "/**") {
			doc = lstripped[3:] + "\n"
			state = stateBlockComment
			continue
		}

		if state == stateSimpleComment {
			if strings.HasSuffix(line, "*/") {
				state = stateNormal
			}
			continue
		}
		if strings.HasPrefix(line, "/*") {
			// Plain comment, not documentation. A same-line closer is
			// consumed outright.
			if !strings.HasSuffix(line, "*/") {
				state = stateSimpleComment
			}
			continue
		}

		switch {
		case enumStartRe.MatchString(line) && !strings.HasSuffix(line, ";"):
			accumulator = line
			terminator = ";"
			state = stateAccumulating
		case strings.HasPrefix(line, APITag) && !strings.HasSuffix(line, ");"):
			accumulator = line
			terminator = ");"
			state = stateAccumulating
		case enumStartRe.MatchString(line) && strings.HasSuffix(line, ";"):
			emit(line)
		case strings.HasPrefix(line, APITag) && strings.HasSuffix(line, ");"):
			emit(line)
		}
		// Anything else is ignored; it does not clear the pending
		// documentation buffer.
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan input: %w", err)
	}

	if state == stateAccumulating {
		log.Debug().Str("fragment", accumulator).Msg("dropping unterminated declaration")
	}

	return units, nil
}
