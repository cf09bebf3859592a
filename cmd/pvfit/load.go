package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/pvfit/dataset"
)

// sampleFile is the mapping form of a sample file: a "samples" key holding the list.
type sampleFile struct {
	Samples []dataset.Sample `yaml:"samples"`
}

// loadSamples reads a YAML or JSON sample file and drops invalid samples.
func loadSamples(path string, c *cli) (dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	samples, err := decodeSamples(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ds := dataset.Filter(samples)
	c.logger.Info("loaded samples", "file", path, "total", len(samples), "kept", ds.Len(), "dropped", len(samples)-ds.Len())
	c.logger.Debug("dataset fingerprint", "axis", c.axis, "fingerprint", fmt.Sprintf("%016x", ds.Fingerprint(c.axis)))

	return ds, nil
}

// decodeSamples accepts a top-level list of samples or a mapping with a "samples" key.
// JSON input is decoded by the same path since YAML is a superset of JSON.
func decodeSamples(data []byte) ([]dataset.Sample, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse samples: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty sample file")
	}

	body := doc.Content[0]
	switch body.Kind {
	case yaml.SequenceNode:
		var samples []dataset.Sample
		if err := body.Decode(&samples); err != nil {
			return nil, fmt.Errorf("failed to decode samples: %w", err)
		}

		return samples, nil
	case yaml.MappingNode:
		var file sampleFile
		if err := body.Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to decode samples: %w", err)
		}

		return file.Samples, nil
	default:
		return nil, errors.New("sample file must hold a list or a mapping with a samples key")
	}
}
