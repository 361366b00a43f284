package match

import (
	"fmt"
	"os"
	"strings"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

// LoadOpenings reads an opening list with one entry per line: either a
// FEN string or the startpos token, case-insensitive. Text after a '#'
// or ';' is a comment and blank lines are skipped. An empty result
// defaults to a single starting-position entry.
func LoadOpenings(path string) ([]uci.Position, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var openings []uci.Position
	for _, raw := range strings.Split(string(file), "\n") {
		line, _, _ := strings.Cut(raw, "#")
		line, _, _ = strings.Cut(line, ";")
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if strings.EqualFold(line, "startpos") {
			openings = append(openings, uci.StartPosition())
			continue
		}

		opening, err := uci.NewPosition(false, line, nil)
		if err != nil {
			return nil, fmt.Errorf("match: opening %q: %w", line, err)
		}

		openings = append(openings, opening)
	}

	if len(openings) == 0 {
		return DefaultOpenings(), nil
	}

	return openings, nil
}

// DefaultOpenings is the opening list used when none is configured:
// every game starts from the standard starting position.
func DefaultOpenings() []uci.Position {
	return []uci.Position{uci.StartPosition()}
}
