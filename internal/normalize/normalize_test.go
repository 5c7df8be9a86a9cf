package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	uuidMocks "github.com/KirkDiggler/skullking/internal/common/uuid/mocks"
	"github.com/KirkDiggler/skullking/internal/models"
)

func newGen(t *testing.T) *uuidMocks.MockUUID {
	t.Helper()
	return uuidMocks.NewMockUUID(gomock.NewController(t))
}

func TestSession_AbsentInput(t *testing.T) {
	got := Session(nil, newGen(t))

	assert.Equal(t, models.ModeSetup, got.Mode)
	assert.Equal(t, 1, got.Round)
	assert.Empty(t, got.Players)
	assert.Empty(t, got.Current)
	assert.Empty(t, got.History)
}

func TestSession_UndecodableInput(t *testing.T) {
	for _, raw := range []string{"not json{", `"a string"`, `[1,2,3]`, `42`} {
		got := Session([]byte(raw), newGen(t))
		assert.Equal(t, models.NewSession(), got, "input %q", raw)
	}
}

func TestSession_ModeCoercion(t *testing.T) {
	tests := []struct {
		raw      string
		expected models.Mode
	}{
		{`{"mode":"active"}`, models.ModeActive},
		{`{"mode":"setup"}`, models.ModeSetup},
		{`{"mode":"game over"}`, models.ModeSetup},
		{`{"mode":7}`, models.ModeSetup},
		{`{}`, models.ModeSetup},
	}

	for _, tt := range tests {
		got := Session([]byte(tt.raw), newGen(t))
		assert.Equal(t, tt.expected, got.Mode, "input %q", tt.raw)
	}
}

func TestSession_RoundCoercion(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{`{"round":4}`, 4},
		{`{"round":"6"}`, 6},
		{`{"round":-2}`, 1},
		{`{"round":"pancake"}`, 1},
		{`{}`, 1},
	}

	for _, tt := range tests {
		got := Session([]byte(tt.raw), newGen(t))
		assert.Equal(t, tt.expected, got.Round, "input %q", tt.raw)
	}
}

func TestSession_PlayerRepair(t *testing.T) {
	gen := newGen(t)
	gen.EXPECT().NewUUID().Return("generated-id")

	raw := `{"players":[
		{"id":"p1","name":"Ann","total":40},
		{"name":"Ben","total":"12"},
		{"id":"p3","name":"   "},
		{"id":"p4"},
		"junk",
		{"id":"p5","name":"Cat","total":null}
	]}`

	got := Session([]byte(raw), gen)

	require.Len(t, got.Players, 4)
	assert.Equal(t, &models.Player{ID: "p1", Name: "Ann", Total: 40}, got.Players[0])
	assert.Equal(t, &models.Player{ID: "generated-id", Name: "Ben", Total: 12}, got.Players[1])
	// absent name recovers as "Player"; whitespace-only is unrecoverable
	assert.Equal(t, &models.Player{ID: "p4", Name: "Player", Total: 0}, got.Players[2])
	assert.Equal(t, &models.Player{ID: "p5", Name: "Cat", Total: 0}, got.Players[3])
}

func TestSession_NonSequencePlayers(t *testing.T) {
	got := Session([]byte(`{"players":{"p1":{"name":"Ann"}}}`), newGen(t))
	assert.Empty(t, got.Players)
}

func TestSession_CurrentEntryCoercion(t *testing.T) {
	raw := `{
		"players":[{"id":"p1","name":"Ann"},{"id":"p2","name":"Ben"}],
		"current":{
			"p1":{"bid":"2","won":1,"pirates":"","mermaid":1},
			"p2":"garbage"
		}
	}`

	got := Session([]byte(raw), newGen(t))

	require.Contains(t, got.Current, "p1")
	assert.Equal(t, &models.RoundEntry{Bid: 2, Won: 1, Pirates: 0, Mermaid: true}, got.Current["p1"])
	// garbage entry resets to defaults
	assert.Equal(t, models.NewRoundEntry(), got.Current["p2"])
}

func TestSession_EveryPlayerGetsAnEntry(t *testing.T) {
	raw := `{"players":[{"id":"p1","name":"Ann"}],"current":"nope"}`

	got := Session([]byte(raw), newGen(t))

	require.Contains(t, got.Current, "p1")
	assert.Equal(t, models.NewRoundEntry(), got.Current["p1"])
}

func TestSession_HistoryRepair(t *testing.T) {
	raw := `{"history":[
		{"round":1,"entries":{"p1":{"bid":1,"won":1,"pirates":0,"mermaid":false,"pts":20}},"totals":{"p1":20}},
		"junk row",
		{"round":"3","entries":{"p1":17},"totals":"x"}
	]}`

	got := Session([]byte(raw), newGen(t))

	require.Len(t, got.History, 3)

	assert.Equal(t, 1, got.History[0].Round)
	assert.Equal(t, 20, got.History[0].Entries["p1"].Pts)
	assert.Equal(t, 20, got.History[0].Totals["p1"])

	// malformed rows degrade to placeholder records, never errors
	assert.Equal(t, 0, got.History[1].Round)
	assert.Empty(t, got.History[1].Entries)

	assert.Equal(t, 3, got.History[2].Round)
	assert.Empty(t, got.History[2].Entries)
	assert.Empty(t, got.History[2].Totals)
}

func TestSession_NonSequenceHistory(t *testing.T) {
	got := Session([]byte(`{"history":{"round":1}}`), newGen(t))
	assert.Empty(t, got.History)
}

func TestSession_Idempotent(t *testing.T) {
	gen := newGen(t)
	raw := `{
		"mode":"active",
		"round":3,
		"players":[{"id":"p1","name":"Ann","total":50},{"id":"p2","name":"Ben","total":-20}],
		"current":{"p1":{"bid":2,"won":2,"pirates":1,"mermaid":true},"p2":{"bid":0,"won":0,"pirates":0,"mermaid":false}},
		"history":[
			{"round":1,"entries":{"p1":{"bid":1,"won":1,"pirates":0,"mermaid":false,"pts":20},"p2":{"bid":0,"won":1,"pirates":0,"mermaid":false,"pts":-10}},"totals":{"p1":20,"p2":-10}},
			{"round":2,"entries":{"p1":{"bid":1,"won":1,"pirates":1,"mermaid":false,"pts":50},"p2":{"bid":1,"won":2,"pirates":0,"mermaid":false,"pts":-10}},"totals":{"p1":70,"p2":-20}}
		]
	}`

	first := Session([]byte(raw), gen)

	blob, err := json.Marshal(first)
	require.NoError(t, err)

	second := Session(blob, gen)
	assert.Equal(t, first, second)
}
