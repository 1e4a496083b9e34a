package domain

import "strings"

type StationID string

type Address struct {
	Country string
	City    string
	Street  string
	Number  string
}

// Location coordinates are kept as the source sent them, number or string.
type Location struct {
	Latitude  any
	Longitude any
}

// StationInfo is the static metadata of a station. Address and Location are nil
// when the source does not report them.
type StationInfo struct {
	ID       StationID
	Address  *Address
	Location *Location
}

// ParseStationIDs splits comma separated lists, trims entries and drops empty
// and duplicate ids while keeping the first-seen order.
func ParseStationIDs(raw ...string) []StationID {
	ids := make([]StationID, 0, len(raw))
	seen := make(map[StationID]struct{}, len(raw))
	for _, chunk := range raw {
		for _, part := range strings.Split(chunk, ",") {
			id := StationID(strings.TrimSpace(part))
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}
