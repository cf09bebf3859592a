package cluster

import (
	"fmt"

	"github.com/arloliu/pvfit/dataset"
)

// Cluster is one group of a partition.
type Cluster struct {
	// Key identifies the cluster within its strategy.
	Key string
	// Label is the display name.
	Label string
	// Members holds the samples of the cluster in input order.
	Members dataset.Dataset
}

// Len returns the number of members.
func (c Cluster) Len() int {
	return len(c.Members)
}

// band is a fixed cluster slot of a banded strategy.
type band struct {
	key   string
	label string
}

var (
	temperatureBands = []band{
		{key: "fria", label: "Fría (≤10°C)"},
		{key: "media", label: "Media (11-29°C)"},
		{key: "calida", label: "Cálida (≥30°C)"},
	}
	inclinationBands = []band{
		{key: "baja", label: "Baja (≤30°)"},
		{key: "alta", label: "Alta (>30°)"},
	}
)

// Partition splits ds into clusters under the given strategy.
//
// Sky-state clusters appear in first-seen order; banded clusters appear in band order.
// Empty clusters are omitted, so an empty dataset yields no clusters.
//
// Returns ErrUnknownStrategy for an undefined strategy.
func Partition(ds dataset.Dataset, strategy Strategy) ([]Cluster, error) {
	switch strategy {
	case StrategySkyState:
		return partitionBySkyState(ds), nil
	case StrategyTemperature:
		return partitionByBand(ds, temperatureBands, temperatureBand), nil
	case StrategyInclination:
		return partitionByBand(ds, inclinationBands, inclinationBand), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
}

func skyStateLabel(state string) string {
	if state == dataset.SkyCloudy {
		return "Nublado"
	}

	return "Despejado"
}

func partitionBySkyState(ds dataset.Dataset) []Cluster {
	index := make(map[string]int)
	var clusters []Cluster
	for _, s := range ds {
		i, ok := index[s.SkyState]
		if !ok {
			i = len(clusters)
			index[s.SkyState] = i
			clusters = append(clusters, Cluster{Key: s.SkyState, Label: skyStateLabel(s.SkyState)})
		}
		clusters[i].Members = append(clusters[i].Members, s)
	}

	return clusters
}

func temperatureBand(s dataset.Sample) int {
	switch {
	case s.Temperature <= ColdMaxTemperature:
		return 0
	case s.Temperature <= MildMaxTemperature:
		return 1
	default:
		return 2
	}
}

func inclinationBand(s dataset.Sample) int {
	if s.Inclination <= LowMaxInclination {
		return 0
	}

	return 1
}

func partitionByBand(ds dataset.Dataset, bands []band, classify func(dataset.Sample) int) []Cluster {
	members := make([]dataset.Dataset, len(bands))
	for _, s := range ds {
		b := classify(s)
		members[b] = append(members[b], s)
	}

	clusters := make([]Cluster, 0, len(bands))
	for i, b := range bands {
		if len(members[i]) == 0 {
			continue
		}
		clusters = append(clusters, Cluster{Key: b.key, Label: b.label, Members: members[i]})
	}

	return clusters
}
