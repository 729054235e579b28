// Package cli implements the non-TTY line mode: it reads prefixes from
// stdin and prints ranked suggestions, bypassing the interactive widget.
// Useful for exercising a suggestion source before wiring it into a UI.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/pkg/source"
)

// LineHandler drives a suggestion source from a line-oriented reader.
type LineHandler struct {
	completer source.Completer
	minPrefix int
	maxPrefix int
	limit     int
	log       *log.Logger
}

// NewLineHandler creates a line-mode driver over completer.
func NewLineHandler(completer source.Completer, minPrefix, maxPrefix, limit int) *LineHandler {
	return &LineHandler{
		completer: completer,
		minPrefix: minPrefix,
		maxPrefix: maxPrefix,
		limit:     limit,
		log:       logger.Default("cli"),
	}
}

// Start reads prefixes from r until EOF, printing suggestions for each.
func (h *LineHandler) Start(r io.Reader) error {
	h.log.Print("typeahead line mode")
	h.log.Print("type a prefix and press Enter to see suggestions (Ctrl+C to exit):")
	reader := bufio.NewReader(r)

	for {
		h.log.Print("> ")
		prefix, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		h.handleInput(prefix)
	}
}

func (h *LineHandler) handleInput(prefix string) {
	if len(prefix) < h.minPrefix {
		h.log.Errorf("prefix too short: %s", prefix)
		return
	}
	if h.maxPrefix > 0 && len(prefix) > h.maxPrefix {
		h.log.Errorf("prefix too long: %s", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix, h.limit)
	elapsed := time.Since(start)
	h.log.Debugf("took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(suggestions) == 0 {
		h.log.Warnf("no suggestions found for prefix: '%s'", prefix)
		return
	}

	h.log.Printf("found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		h.log.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, formatWithCommas(s.Frequency))
	}
}

// formatWithCommas renders an integer with thousands separators.
func formatWithCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
