// Package words supplies the canonical word list: an embedded default
// vocabulary of 5-letter words, or a caller-provided file. The list order is
// canonical — answer ranks, feedback-matrix rows and tie-breaking all depend
// on it — so the loader preserves file order.
package words

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed words.txt
var embedded string

// Default returns the embedded word list in file order.
func Default() []string {
	return parse(embedded)
}

// LoadFile reads a word list from path, one word per line.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration, not request input
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	list := parse(string(data))
	if len(list) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}
	return list, nil
}

func parse(text string) []string {
	lines := strings.Split(text, "\n")
	list := make([]string, 0, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		list = append(list, word)
	}
	return list
}
