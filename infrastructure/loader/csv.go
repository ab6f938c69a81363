package loader

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/pkg/errors"
)

var delimiters = []rune{',', ';', '\t'}

// detectDelimiter escolhe o separador que aparece de forma mais consistente nas primeiras linhas
func detectDelimiter(content []byte) rune {
	sample := content
	if len(sample) > 4096 {
		sample = sample[:4096]
	}

	lines := make([]string, 0, 5)
	for _, line := range strings.Split(string(sample), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if len(lines) == 5 {
			break
		}
	}

	best := ','
	bestScore := 0.0
	for _, delim := range delimiters {
		counts := make([]int, 0, len(lines))
		sum := 0
		for _, line := range lines {
			c := strings.Count(line, string(delim))
			counts = append(counts, c)
			sum += c
		}
		if sum == 0 {
			continue
		}

		avg := float64(sum) / float64(len(counts))
		variance := 0.0
		for _, c := range counts {
			diff := float64(c) - avg
			variance += diff * diff
		}
		variance /= float64(len(counts))

		score := avg / (1 + variance)
		if score > bestScore {
			bestScore = score
			best = delim
		}
	}

	return best
}

func readCSV(content []byte) ([][]string, error) {
	decoded, err := decode(content)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar CSV")
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = detectDelimiter(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler CSV")
	}

	return rows, nil
}
