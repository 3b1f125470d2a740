// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: embedded algorithm metadata, lookup and default inputs.

package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/builder"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Complexity holds asymptotic bounds as display strings.
type Complexity struct {
	Best    string `json:"best" yaml:"best"`
	Average string `json:"average" yaml:"average"`
	Worst   string `json:"worst" yaml:"worst"`
	Space   string `json:"space" yaml:"space"`
}

// Dataset asks for a generated array when an entry has no fixed Values.
// Kind is "random" or "sorted".
type Dataset struct {
	Kind string `json:"kind" yaml:"kind"`
	Size int    `json:"size" yaml:"size"`
}

// Entry describes one algorithm.
type Entry struct {
	ID          ID         `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Topic       Topic      `json:"topic" yaml:"topic"`
	Description string     `json:"description" yaml:"description"`
	Complexity  Complexity `json:"complexity" yaml:"complexity"`
	Steps       []string   `json:"steps" yaml:"steps"`
	UseCase     string     `json:"useCase,omitempty" yaml:"useCase"`
	Dataset     *Dataset   `json:"dataset,omitempty" yaml:"dataset"`
	Defaults    Params     `json:"defaults" yaml:"defaults"`
}

var (
	loadOnce sync.Once
	entries  []Entry
	byID     map[ID]int
	loadErr  error
)

func load() error {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(catalogYAML, &entries); err != nil {
			loadErr = fmt.Errorf("catalog: decode catalog.yaml: %w", err)
			return
		}
		byID = make(map[ID]int, len(entries))
		for i, e := range entries {
			if _, dup := byID[e.ID]; dup {
				loadErr = fmt.Errorf("catalog: duplicate id %q", e.ID)
				return
			}
			byID[e.ID] = i
		}
	})

	return loadErr
}

// List returns every entry in presentation order.
func List() ([]Entry, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out, nil
}

// Lookup returns the entry for id.
func Lookup(id ID) (Entry, error) {
	if err := load(); err != nil {
		return Entry{}, err
	}
	i, ok := byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}

	return entries[i], nil
}

// DefaultParams returns the demo inputs for id. Generated datasets use the
// builder's fixed default seed, so repeated calls agree.
func DefaultParams(id ID) (Params, error) {
	e, err := Lookup(id)
	if err != nil {
		return Params{}, err
	}
	p := Params{}.Merge(e.Defaults)
	if e.Dataset != nil && len(p.Values) == 0 {
		var values []int
		switch e.Dataset.Kind {
		case "sorted":
			values, err = builder.SortedArray(e.Dataset.Size)
		default:
			values, err = builder.RandomArray(e.Dataset.Size)
		}
		if err != nil {
			return Params{}, fmt.Errorf("catalog: default dataset for %q: %w", id, err)
		}
		p.Values = values
	}
	if e.Topic == TopicGraphs && p.Graph == nil {
		p.Graph = builder.SampleGraph()
	}

	return p, nil
}
