// Package normalize repairs persisted session blobs into structurally valid
// state. Every function here is total: malformed input degrades to the nearest
// valid shape instead of surfacing an error.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/skullking/internal/common/uuid"
	"github.com/KirkDiggler/skullking/internal/models"
)

// Session coerces an arbitrary persisted value into a valid session. Absent or
// undecodable input yields a fresh default session. Players that survive
// coercion keep their ids, names, and totals; a player whose name trims to
// empty cannot be recovered and is dropped. Idempotent on valid state: the id
// generator only fires for players persisted without an id.
func Session(raw []byte, gen uuid.UUID) *models.Session {
	out := models.NewSession()
	if len(raw) == 0 {
		return out
	}

	var loose map[string]any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return out
	}

	if asString(loose["mode"]) == string(models.ModeActive) {
		out.Mode = models.ModeActive
	}
	if r := asInt(loose["round"]); r > 1 {
		out.Round = r
	}
	if t, err := time.Parse(time.RFC3339Nano, asString(loose["updatedAt"])); err == nil {
		out.UpdatedAt = t
	}

	out.Players = players(loose["players"], gen)
	out.Current = current(loose["current"])
	out.History = history(loose["history"])

	// every surviving player gets a current entry
	for _, p := range out.Players {
		out.EnsureEntry(p.ID)
	}

	return out
}

func players(v any, gen uuid.UUID) []*models.Player {
	list, ok := v.([]any)
	if !ok {
		return []*models.Player{}
	}

	out := make([]*models.Player, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name := asString(obj["name"])
		if name == "" {
			name = "Player"
		}
		name = strings.TrimSpace(name)
		if name == "" {
			// a player must have a name; nothing left to preserve
			continue
		}

		id := asString(obj["id"])
		if id == "" {
			id = gen.NewUUID()
		}

		out = append(out, &models.Player{
			ID:    id,
			Name:  name,
			Total: asInt(obj["total"]),
		})
	}

	return out
}

func current(v any) map[string]*models.RoundEntry {
	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]*models.RoundEntry{}
	}

	out := make(map[string]*models.RoundEntry, len(obj))
	for pid, item := range obj {
		fields, ok := item.(map[string]any)
		if !ok {
			out[pid] = models.NewRoundEntry()
			continue
		}
		out[pid] = &models.RoundEntry{
			Bid:     asInt(fields["bid"]),
			Won:     asInt(fields["won"]),
			Pirates: asInt(fields["pirates"]),
			Mermaid: truthy(fields["mermaid"]),
		}
	}

	return out
}

func history(v any) []*models.RoundRecord {
	list, ok := v.([]any)
	if !ok {
		return []*models.RoundRecord{}
	}

	out := make([]*models.RoundRecord, 0, len(list))
	for _, item := range list {
		rec := &models.RoundRecord{
			Entries: map[string]*models.RoundResult{},
			Totals:  map[string]int{},
		}

		// malformed rows stay as placeholder records rather than failing;
		// readers render missing per-player cells as "—"
		obj, ok := item.(map[string]any)
		if ok {
			rec.Round = asInt(obj["round"])
			if t, err := time.Parse(time.RFC3339Nano, asString(obj["recordedAt"])); err == nil {
				rec.RecordedAt = t
			}
			if entries, ok := obj["entries"].(map[string]any); ok {
				for pid, e := range entries {
					fields, ok := e.(map[string]any)
					if !ok {
						continue
					}
					rec.Entries[pid] = &models.RoundResult{
						Bid:     asInt(fields["bid"]),
						Won:     asInt(fields["won"]),
						Pirates: asInt(fields["pirates"]),
						Mermaid: truthy(fields["mermaid"]),
						Pts:     asInt(fields["pts"]),
					}
				}
			}
			if totals, ok := obj["totals"].(map[string]any); ok {
				for pid, t := range totals {
					rec.Totals[pid] = asInt(t)
				}
			}
		}

		out = append(out, rec)
	}

	return out
}

// asString renders scalar values the way the persisted schema would have
// written them; composite or absent values become the empty string.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// asInt coerces numbers and numeric strings to an int; anything else is 0.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b != ""
	default:
		return false
	}
}
