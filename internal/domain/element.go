package domain

import (
	"fmt"
	"strings"
)

// Element is one of the five phases
type Element string

const (
	ElementMetal Element = "metal"
	ElementWood  Element = "wood"
	ElementWater Element = "water"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
)

// AllElements lists the five phases in generative order starting from wood
var AllElements = []Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

// Valid reports whether e is one of the five phases
func (e Element) Valid() bool {
	switch e {
	case ElementMetal, ElementWood, ElementWater, ElementFire, ElementEarth:
		return true
	}
	return false
}

// Title returns the capitalized element name
func (e Element) Title() string {
	if e == "" {
		return ""
	}
	return strings.ToUpper(string(e[:1])) + string(e[1:])
}

// ParseElement converts a case-insensitive name into an Element
func ParseElement(s string) (Element, error) {
	e := Element(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("%w: unknown element %q", ErrInvalidInput, s)
	}
	return e, nil
}

// ElementProfile is the user's fixed elemental root. It is owned by another
// subsystem and only read here.
type ElementProfile struct {
	UserID         string  `json:"user_id"`
	RootName       string  `json:"root_name"`
	PrimaryElement Element `json:"primary_element"`
	RootBonus      float64 `json:"root_bonus"`
}
