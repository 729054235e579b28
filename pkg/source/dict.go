package source

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadFile reads a word-frequency list into w and returns the number of
// words indexed. Each non-empty line holds a word and an optional integer
// frequency separated by whitespace; missing frequencies default to 1.
// Lines starting with '#' are skipped. maxWords of 0 loads everything.
func LoadFile(w *Words, path string, maxWords int) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening dictionary: %w", err)
	}
	defer file.Close()

	loaded := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if maxWords > 0 && loaded >= maxWords {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		freq := 1
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Debugf("skipping malformed frequency on line %q", line)
				continue
			}
			freq = parsed
		}
		w.AddWord(fields[0], freq)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("reading dictionary: %w", err)
	}
	log.Debugf("loaded %d words from %s", loaded, path)
	return loaded, nil
}
