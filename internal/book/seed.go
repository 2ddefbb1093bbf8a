package book

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultCatalog returns the built-in ten-book catalog the service starts
// with when no catalog file is configured.
func DefaultCatalog() map[string]Book {
	return map[string]Book{
		"1":  {Author: "Chinua Achebe", Title: "Things Fall Apart", Reviews: map[string]string{}},
		"2":  {Author: "Hans Christian Andersen", Title: "Fairy tales", Reviews: map[string]string{}},
		"3":  {Author: "Dante Alighieri", Title: "The Divine Comedy", Reviews: map[string]string{}},
		"4":  {Author: "Unknown", Title: "The Epic Of Gilgamesh", Reviews: map[string]string{}},
		"5":  {Author: "Unknown", Title: "The Book Of Job", Reviews: map[string]string{}},
		"6":  {Author: "Unknown", Title: "One Thousand and One Nights", Reviews: map[string]string{}},
		"7":  {Author: "Unknown", Title: "Njal's Saga", Reviews: map[string]string{}},
		"8":  {Author: "Jane Austen", Title: "Pride and Prejudice", Reviews: map[string]string{}},
		"9":  {Author: "Honore de Balzac", Title: "Le Pere Goriot", Reviews: map[string]string{}},
		"10": {Author: "Samuel Beckett", Title: "Molloy, Malone Dies, The Unnamable, the trilogy", Reviews: map[string]string{}},
	}
}

// LoadCatalogFile reads a seed catalog from a JSON file shaped as a mapping
// from ISBN to book record.
func LoadCatalogFile(path string) (map[string]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var catalog map[string]Book
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return catalog, nil
}
