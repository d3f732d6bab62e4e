package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tilelife/internal/core"
)

func TestStatusLines(t *testing.T) {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Rule",
		Params: []core.Parameter{
			core.StringParam("rule", "Rule", "B2/S34"),
			core.StringParam("tile", "Tile", "hex"),
		},
	}}}
	s := Status{Generation: 12, Live: 40, Rate: 10, Paused: true, HasCheckpoint: true, Hovered: "(1,2)"}
	assert.Equal(t, []string{
		"gen 12  live 40",
		"paused @ 10 gen/s",
		"rule B2/S34",
		"tile hex",
		"checkpoint",
		"(1,2)",
	}, s.Lines(params))

	assert.Equal(t, []string{"gen 0  live 0", "running @ 2.5 gen/s"}, Status{Rate: 2.5}.Lines(core.ParameterSnapshot{}))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Life Controls", Title("life"))
	assert.Equal(t, "Controls", Title(""))
}
