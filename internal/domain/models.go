package domain

import "fmt"

// Sex of a person as recorded in the dataset
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// ParseSex converts a dataset sex code into a Sex
func ParseSex(code string) (Sex, error) {
	switch code {
	case "m", "male":
		return SexMale, nil
	case "f", "female":
		return SexFemale, nil
	default:
		return "", fmt.Errorf("unknown sex code %q", code)
	}
}

// Person is a single record of the people dataset. Values are never
// mutated after the dataset is built.
type Person struct {
	Name       string
	Sex        Sex
	Born       int
	Died       int
	FatherName string // empty when unknown
	MotherName string // empty when unknown
	Slug       string
}

// IsFemale reports whether the person is recorded as female
func (p Person) IsFemale() bool {
	return p.Sex == SexFemale
}

// Lifespan formats the person as "Name (born - died)"
func (p Person) Lifespan() string {
	return fmt.Sprintf("%s (%d - %d)", p.Name, p.Born, p.Died)
}
