// mkcontacts generates a dirty contacts CSV fixture for testing the cleaner.
// Every row gets a deliberately messy mix of whitespace, casing, phone
// punctuation, and street abbreviations; a fraction of rows get absent
// emails or invalid phone numbers.
// Usage: go run ./cmd/mkcontacts --out data/input/contacts.csv --rows 100
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

var firstNames = []string{"John", "Jane", "Bob", "Alice", "Carlos", "Maria", "Wei", "Fatima", "Olu", "Priya"}
var lastNames = []string{"Doe", "Smith", "Johnson", "Garcia", "Chen", "Khan", "Okafor", "Patel", "Brown", "Lee"}
var streets = []string{"main st.", "OAK AVE", "Elm Rd", "maple dr.", "2nd ln", "sunset blvd", "park ct", "CHERRY PL"}
var cities = []string{"Springfield", "Riverton", "Fairview", "Georgetown", "Ashland"}
var states = []string{"CA", "TX", "NY", "OH", "WA"}

func main() {
	out := flag.String("out", "data/input/contacts.csv", "output csv path")
	rows := flag.Int("rows", 100, "number of contact rows to generate")
	seed := flag.Int64("seed", 42, "random seed (fixed for reproducible fixtures)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.Columns); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	for i := 1; i <= *rows; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		if err := w.Write([]string{
			fmt.Sprintf("C%04d", i),
			first,
			last,
			dirtyEmail(rng, first, last),
			dirtyPhone(rng),
			fmt.Sprintf("%d %s", 100+rng.Intn(900), streets[rng.Intn(len(streets))]),
			cities[rng.Intn(len(cities))],
			states[rng.Intn(len(states))],
			fmt.Sprintf("%05d", 10000+rng.Intn(89999)),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "write row %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", *rows, *out)
}

// dirtyEmail mixes casing and stray whitespace; roughly one in ten is empty.
func dirtyEmail(rng *rand.Rand, first, last string) string {
	if rng.Intn(10) == 0 {
		return ""
	}
	email := fmt.Sprintf("%s.%s@Example.COM", first, last)
	switch rng.Intn(3) {
	case 0:
		return "  " + email
	case 1:
		return email + " "
	default:
		return email
	}
}

// dirtyPhone cycles through common punctuation styles; roughly one in ten
// has an invalid digit count.
func dirtyPhone(rng *rand.Rand) string {
	if rng.Intn(10) == 0 {
		return fmt.Sprintf("%d", 10000+rng.Intn(89999))
	}
	area := 200 + rng.Intn(700)
	mid := 100 + rng.Intn(900)
	tail := 1000 + rng.Intn(9000)
	switch rng.Intn(4) {
	case 0:
		return fmt.Sprintf("(%d) %d-%d", area, mid, tail)
	case 1:
		return fmt.Sprintf("%d.%d.%d", area, mid, tail)
	case 2:
		return fmt.Sprintf("1-%d-%d-%d", area, mid, tail)
	default:
		return fmt.Sprintf("%d%d%d", area, mid, tail)
	}
}
