// Package people holds the read-only dataset that suggestions are drawn
// from. A Dataset is built once at startup and handed to the UI; nothing
// mutates it afterwards.
package people

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"peoplefinder/internal/domain"
)

//go:embed people.toml
var builtin []byte

// record mirrors one [[person]] table of a dataset file
type record struct {
	Name   string `toml:"name"`
	Sex    string `toml:"sex"`
	Born   int    `toml:"born"`
	Died   int    `toml:"died"`
	Father string `toml:"father"`
	Mother string `toml:"mother"`
	Slug   string `toml:"slug"`
}

type document struct {
	Person []record `toml:"person"`
}

// Dataset is an immutable, ordered collection of people
type Dataset struct {
	people []domain.Person
}

// New validates people and returns a Dataset holding its own copy of them
func New(people []domain.Person) (*Dataset, error) {
	owned := make([]domain.Person, len(people))
	for i, p := range people {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("person %d: empty name", i)
		}
		if p.Sex != domain.SexMale && p.Sex != domain.SexFemale {
			return nil, fmt.Errorf("person %d (%s): unknown sex %q", i, p.Name, p.Sex)
		}
		if p.Slug == "" {
			p.Slug = slugFor(p.Name, p.Born)
		}
		owned[i] = p
	}
	return &Dataset{people: owned}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// compiled-in data.
func MustNew(people []domain.Person) *Dataset {
	d, err := New(people)
	if err != nil {
		panic(err)
	}
	return d
}

// Builtin returns the dataset compiled into the binary
func Builtin() (*Dataset, error) {
	d, err := Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in people: %w", err)
	}
	return d, nil
}

// LoadFile reads a dataset from a TOML file
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read people file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load people from %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a TOML dataset document
func Parse(data []byte) (*Dataset, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse people: %w", err)
	}

	people := make([]domain.Person, 0, len(doc.Person))
	for i, r := range doc.Person {
		sex, err := domain.ParseSex(r.Sex)
		if err != nil {
			return nil, fmt.Errorf("person %d (%s): %w", i, r.Name, err)
		}
		people = append(people, domain.Person{
			Name:       r.Name,
			Sex:        sex,
			Born:       r.Born,
			Died:       r.Died,
			FatherName: r.Father,
			MotherName: r.Mother,
			Slug:       r.Slug,
		})
	}
	return New(people)
}

// All returns a copy of every person in dataset order
func (d *Dataset) All() []domain.Person {
	out := make([]domain.Person, len(d.people))
	copy(out, d.people)
	return out
}

// Len returns the number of people
func (d *Dataset) Len() int {
	return len(d.people)
}

// Filter returns the people whose name contains query, in dataset order.
// See Matches for the comparison rules.
func (d *Dataset) Filter(query string) []domain.Person {
	out := make([]domain.Person, 0, len(d.people))
	for _, p := range d.people {
		if Matches(p.Name, query) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether name contains query once both are trimmed and
// lowercased. An empty query matches every name.
func Matches(name, query string) bool {
	return strings.Contains(Normalize(name), Normalize(query))
}

// Normalize trims surrounding whitespace and lowercases s
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func slugFor(name string, born int) string {
	parts := strings.Fields(strings.ToLower(strings.ReplaceAll(name, ".", "")))
	return strings.Join(append(parts, strconv.Itoa(born)), "-")
}
