package processor

import "strings"

// GetResource resolves instrType to a (latency, allowed ports) pair using
// the hierarchical fallback policy of spec §4.2: the TYPE is looked up
// case-insensitively, then with its trailing ".segment" stripped
// repeatedly; the latency table and the port table are each searched this
// way on their own. If either table has no matching prefix, GetResource
// falls back to (1, {PortOrder[0]}).
//
// Complexity: O(k) where k is the number of dot-separated segments in
// instrType (bounded, typically <= 3).
func (p *Processor) GetResource(instrType string) (latency int64, ports []string) {
	key := strings.ToUpper(instrType)

	var resolvedLatency int64
	haveLatency := false
	for {
		if lat, ok := p.Resources[key]; ok {
			resolvedLatency, haveLatency = lat, true
			break
		}
		idx := strings.LastIndex(key, ".")
		if idx < 0 {
			break
		}
		key = key[:idx]
	}

	key = strings.ToUpper(instrType)
	var resolvedPorts []string
	havePorts := false
	for {
		if ps, ok := p.RPorts[key]; ok {
			resolvedPorts, havePorts = ps, true
			break
		}
		idx := strings.LastIndex(key, ".")
		if idx < 0 {
			break
		}
		key = key[:idx]
	}

	if haveLatency && havePorts {
		return resolvedLatency, resolvedPorts
	}

	return 1, p.PortOrder[:1]
}
