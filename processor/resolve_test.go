package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvcat/processor"
)

func TestGetResource_ExactMatch(t *testing.T) {
	p := &processor.Processor{
		Resources: map[string]int64{"MEM.L.D": 4},
		RPorts:    map[string][]string{"MEM.L.D": {"P0"}},
		PortOrder: []string{"P0"},
	}
	lat, ports := p.GetResource("mem.l.d")
	assert.Equal(t, int64(4), lat)
	assert.Equal(t, []string{"P0"}, ports)
}

func TestGetResource_HierarchicalFallback(t *testing.T) {
	p := &processor.Processor{
		Resources: map[string]int64{"MEM": 5},
		RPorts:    map[string][]string{"MEM": {"P1"}},
		PortOrder: []string{"P0", "P1"},
	}
	lat, ports := p.GetResource("MEM.L.D")
	assert.Equal(t, int64(5), lat)
	assert.Equal(t, []string{"P1"}, ports)
}

func TestGetResource_UnknownFallsBackToFirstPort(t *testing.T) {
	p := &processor.Processor{
		Resources: map[string]int64{},
		RPorts:    map[string][]string{},
		PortOrder: []string{"P0", "P1"},
	}
	lat, ports := p.GetResource("WEIRD.TYPE")
	assert.Equal(t, int64(1), lat)
	assert.Equal(t, []string{"P0"}, ports)
}

func TestLoadJSON_ExecuteDefaultsToPortWidth(t *testing.T) {
	data := []byte(`{
		"name": "p",
		"dispatch": 2,
		"retire": 2,
		"latencies": {"ADD": 1},
		"ports": {"P0": ["ADD"], "P1": ["ADD"]}
	}`)
	p, err := processor.LoadJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 2, p.ExecuteWidth)
}

func TestLoadJSON_ZeroWidthIsConfigurationError(t *testing.T) {
	data := []byte(`{"name":"p","dispatch":0,"retire":1,"execute":1,"latencies":{},"ports":{"P0":["ADD"]}}`)
	_, err := processor.LoadJSON(data)
	assert.ErrorIs(t, err, processor.ErrZeroWidth)
}

func TestLoadJSON_NoPortsIsConfigurationError(t *testing.T) {
	data := []byte(`{"name":"p","dispatch":1,"retire":1,"execute":1,"latencies":{},"ports":{}}`)
	_, err := processor.LoadJSON(data)
	assert.ErrorIs(t, err, processor.ErrNoPorts)
}
