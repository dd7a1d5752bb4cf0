package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gatsp/city"
)

// LoadCities reads a city table from path. Files ending in .json go through
// ReadCitiesJSON, everything else through ReadCities.
func LoadCities(path string, a *city.Alphabet) (*city.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		t, err := ReadCitiesJSON(data, a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	t, err := ReadCities(f, a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadChromosomes reads up to limit chromosomes from path.
func LoadChromosomes(path string, a *city.Alphabet, limit int) ([][]city.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	seeds, err := ReadChromosomes(f, a, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seeds, nil
}
