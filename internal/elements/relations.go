package elements

import "github.com/osse101/Cultivation_Go/internal/domain"

// Relation is the adjacency of one element in the generative/destructive graph
type Relation struct {
	Generates   domain.Element
	GeneratedBy domain.Element
	Destroys    domain.Element
	DestroyedBy domain.Element
}

var relations = map[domain.Element]Relation{
	domain.ElementMetal: {Generates: domain.ElementWater, Destroys: domain.ElementWood, GeneratedBy: domain.ElementEarth, DestroyedBy: domain.ElementFire},
	domain.ElementWood:  {Generates: domain.ElementFire, Destroys: domain.ElementEarth, GeneratedBy: domain.ElementWater, DestroyedBy: domain.ElementMetal},
	domain.ElementWater: {Generates: domain.ElementWood, Destroys: domain.ElementFire, GeneratedBy: domain.ElementMetal, DestroyedBy: domain.ElementEarth},
	domain.ElementFire:  {Generates: domain.ElementEarth, Destroys: domain.ElementMetal, GeneratedBy: domain.ElementWood, DestroyedBy: domain.ElementWater},
	domain.ElementEarth: {Generates: domain.ElementMetal, Destroys: domain.ElementWater, GeneratedBy: domain.ElementFire, DestroyedBy: domain.ElementWood},
}

// RelationOf returns the adjacency for e. ok is false for unknown elements.
func RelationOf(e domain.Element) (Relation, bool) {
	r, ok := relations[e]
	return r, ok
}

// Interaction classifies how an active element acts on a subject element
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionSame
	InteractionNourishes // active generates subject
	InteractionDrains    // subject destroys active
	InteractionOpposes   // active destroys subject
)

// Classify returns how active acts on subject
func Classify(subject, active domain.Element) Interaction {
	r, ok := relations[subject]
	if !ok {
		return InteractionNone
	}
	switch active {
	case subject:
		return InteractionSame
	case r.GeneratedBy:
		return InteractionNourishes
	case r.Destroys:
		return InteractionDrains
	case r.DestroyedBy:
		return InteractionOpposes
	}
	return InteractionNone
}
