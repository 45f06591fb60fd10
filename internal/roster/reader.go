package roster

import (
	"encoding/csv"
	"io"
	"log/slog"
	"math/rand"
	"strings"
)

// Reader reads roster rows from a CSV source. Both column naming schemes seen
// in roster exports are accepted: team_name/firstName/lastName and
// Team/First/Last.
type Reader struct {
	reader io.Reader
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		reader: reader,
	}
}

// ReadPlayers reads every roster row. Rows missing a team or either name part
// are skipped silently.
func (r *Reader) ReadPlayers() ([]Player, error) {
	csvReader := csv.NewReader(r.reader)
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, err
	}

	var players []Player
	skipped := 0
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = row[i]
			}
		}

		p := Player{
			TeamName:  firstOf(record, "team_name", "Team"),
			FirstName: firstOf(record, "firstName", "First"),
			LastName:  firstOf(record, "lastName", "Last"),
		}
		if p.TeamName == "" || p.FirstName == "" || p.LastName == "" {
			skipped++
			continue
		}
		players = append(players, p)
	}

	if skipped > 0 {
		slog.Debug("Skipped roster rows with missing fields", "skipped", skipped)
	}

	return players, nil
}

func firstOf(record map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(record[k]); v != "" {
			return v
		}
	}
	return ""
}

// Sample returns a deterministic subsample of n players. The seed fixes the
// shuffle so repeated runs select the same set.
func Sample(players []Player, n int, seed int64) []Player {
	if n >= len(players) {
		return players
	}
	shuffled := make([]Player, len(players))
	copy(shuffled, players)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
