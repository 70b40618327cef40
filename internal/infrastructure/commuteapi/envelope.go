package commuteapi

import (
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// decodeList accepts either a bare JSON array or a paginated object with a
// "results" array. Any other shape yields an empty list. Elements that fail
// to decode are skipped so one bad record does not hide the rest.
func decodeList[T any](body []byte, log zerolog.Logger) []T {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		var page struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			log.Warn().Err(err).Msg("unexpected list envelope, treating as empty")
			return []T{}
		}
		items = page.Results
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			log.Debug().Err(err).Int("index", i).Msg("skipping undecodable list element")
			continue
		}
		out = append(out, v)
	}
	return out
}
