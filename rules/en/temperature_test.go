package en

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tempora/grammar"
	"tempora/value"
)

func combinedRules(rulesets ...[]grammar.Rule) []grammar.Rule {
	var out []grammar.Rule
	for _, rs := range rulesets {
		out = append(out, rs...)
	}
	return out
}

func temperatureSpanning(t *testing.T, nodes []grammar.Node, start, end int) value.Temperature {
	t.Helper()
	for _, n := range nodes {
		if n.ByteRange.Start == start && n.ByteRange.End == end {
			if tmp, ok := n.Value.(value.Temperature); ok {
				return tmp
			}
		}
	}
	t.Fatalf("no temperature node spanning [%d,%d) among %d nodes", start, end, len(nodes))
	return value.Temperature{}
}

func TestTemperatureRulesCelsius(t *testing.T) {
	text := "20C"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), TemperatureRules()))
	tmp := temperatureSpanning(t, nodes, 0, len(text))
	assert.Equal(t, 20.0, tmp.Val)
	assert.Equal(t, "Celsius", tmp.Unit)
	assert.False(t, tmp.LatentFlag)
}

func TestTemperatureRulesBareNumberIsLatent(t *testing.T) {
	text := "20"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), TemperatureRules()))
	tmp := temperatureSpanning(t, nodes, 0, len(text))
	assert.True(t, tmp.LatentFlag)
}

func TestPercentageRules(t *testing.T) {
	text := "50%"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), PercentageRules()))
	var found *value.Percentage
	for _, n := range nodes {
		if p, ok := n.Value.(value.Percentage); ok && n.ByteRange.Start == 0 && n.ByteRange.End == len(text) {
			found = &p
		}
	}
	if found == nil {
		t.Fatalf("no percentage node spanning the full text among %d nodes", len(nodes))
	}
	assert.Equal(t, 50.0, found.Val)
}
