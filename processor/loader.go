package processor

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// jsonProcessor mirrors the wire object of spec §6. Execute is a pointer
// so the loader can distinguish "absent from the JSON" (apply the
// ports-width fallback, SPEC_FULL.md §9 item 2) from "present as zero"
// (ErrZeroWidth).
type jsonProcessor struct {
	Name      string             `json:"name"`
	Dispatch  int                `json:"dispatch"`
	Retire    int                `json:"retire"`
	Execute   *int               `json:"execute"`
	Latencies map[string]int64   `json:"latencies"`
	Ports     map[string][]string `json:"ports"`

	NBlocks    int    `json:"nBlocks"`
	BlkSize    int    `json:"blkSize"`
	MPenalty   int    `json:"mPenalty"`
	MIssueTime int    `json:"mIssueTime"`
	Sched      string `json:"sched"`
}

// LoadJSON decodes a Processor wire object (spec §6), builds the derived
// reverse port table, and validates the result (spec §7
// ConfigurationError).
func LoadJSON(data []byte) (*Processor, error) {
	var wire jsonProcessor
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	p := &Processor{
		Name:          wire.Name,
		DispatchWidth: wire.Dispatch,
		RetireWidth:   wire.Retire,
		Resources:     make(map[string]int64, len(wire.Latencies)),
		Ports:         make(map[string][]string, len(wire.Ports)),
		RPorts:        make(map[string][]string),
		Cache: CacheConfig{
			NumBlocks:     wire.NBlocks,
			BlockSize:     wire.BlkSize,
			MissPenalty:   wire.MPenalty,
			MissIssueTime: wire.MIssueTime,
		},
	}

	for typ, lat := range wire.Latencies {
		p.Resources[strings.ToUpper(typ)] = lat
	}

	for port, types := range wire.Ports {
		upperTypes := make([]string, len(types))
		for i, t := range types {
			upperTypes[i] = strings.ToUpper(t)
		}
		sort.Strings(upperTypes)
		p.Ports[port] = upperTypes
		p.PortOrder = append(p.PortOrder, port)
	}
	sort.Strings(p.PortOrder)

	for _, port := range p.PortOrder {
		for _, typ := range p.Ports[port] {
			p.RPorts[typ] = append(p.RPorts[typ], port)
		}
	}

	if wire.Execute != nil {
		p.ExecuteWidth = *wire.Execute
	} else {
		p.ExecuteWidth = len(p.PortOrder)
	}

	if strings.EqualFold(wire.Sched, "optimal") {
		p.Sched = Optimal
	} else {
		p.Sched = Greedy
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// JSON re-encodes the Processor in the spec §6 wire format.
func (p *Processor) JSON() ([]byte, error) {
	execute := p.ExecuteWidth
	wire := jsonProcessor{
		Name:       p.Name,
		Dispatch:   p.DispatchWidth,
		Retire:     p.RetireWidth,
		Execute:    &execute,
		Latencies:  p.Resources,
		Ports:      p.Ports,
		NBlocks:    p.Cache.NumBlocks,
		BlkSize:    p.Cache.BlockSize,
		MPenalty:   p.Cache.MissPenalty,
		MIssueTime: p.Cache.MissIssueTime,
		Sched:      p.Sched.String(),
	}
	return json.MarshalIndent(wire, "", "  ")
}
