// Package relation is the static schema of associations between rental
// entities. Each edge carries an explicit on-delete action, so the delete
// path and the store schema agree on which links cascade and which reset
// to null. The graph never changes at runtime.
package relation

// Kind identifies an entity type in the graph.
type Kind string

const (
	KindLandlord       Kind = "landlord"
	KindTenant         Kind = "tenant"
	KindRentalBuilding Kind = "rental_building"
	KindPropertyType   Kind = "property_type"
	KindPayment        Kind = "payment"
)

// Action is what happens to a child row when its parent is deleted.
type Action int

const (
	// ActionSetNull clears the child's foreign key; the child survives.
	ActionSetNull Action = iota
	// ActionCascade deletes the child together with the parent.
	ActionCascade
)

// Edge is a one-to-many association from Parent to Child via the
// ForeignKey column on the child.
type Edge struct {
	Parent     Kind
	Child      Kind
	ForeignKey string
	OnDelete   Action
}

var edges = []Edge{
	{Parent: KindLandlord, Child: KindTenant, ForeignKey: "landlord_id", OnDelete: ActionCascade},
	{Parent: KindLandlord, Child: KindRentalBuilding, ForeignKey: "landlord_id", OnDelete: ActionCascade},
	{Parent: KindTenant, Child: KindRentalBuilding, ForeignKey: "tenant_id", OnDelete: ActionSetNull},
	{Parent: KindPropertyType, Child: KindRentalBuilding, ForeignKey: "property_type_id", OnDelete: ActionSetNull},
	{Parent: KindRentalBuilding, Child: KindPayment, ForeignKey: "rental_building_id", OnDelete: ActionCascade},
}

// JoinTable describes a many-to-many association. Join rows disappear
// with either side.
type JoinTable struct {
	Name  string
	Left  Kind
	Right Kind
}

// LandlordPropertyTypes is the landlord <-> property type association.
var LandlordPropertyTypes = JoinTable{
	Name:  "landlord_property_types",
	Left:  KindLandlord,
	Right: KindPropertyType,
}

// Children returns the outgoing edges of the given parent kind.
func Children(parent Kind) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.Parent == parent {
			out = append(out, e)
		}
	}
	return out
}

// CascadeTargets returns the child kinds deleted together with the given
// parent, direct children only.
func CascadeTargets(parent Kind) []Kind {
	var out []Kind
	for _, e := range Children(parent) {
		if e.OnDelete == ActionCascade {
			out = append(out, e.Child)
		}
	}
	return out
}

// SetNullTargets returns the edges whose foreign key resets to null when
// the given parent is deleted.
func SetNullTargets(parent Kind) []Edge {
	var out []Edge
	for _, e := range Children(parent) {
		if e.OnDelete == ActionSetNull {
			out = append(out, e)
		}
	}
	return out
}

// CascadeClosure returns every kind transitively deleted with the given
// parent, parents before children. Deleting a landlord therefore reaches
// its buildings' payments even though no direct edge exists.
func CascadeClosure(parent Kind) []Kind {
	var out []Kind
	seen := map[Kind]bool{parent: true}
	queue := []Kind{parent}
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		for _, child := range CascadeTargets(k) {
			if !seen[child] {
				seen[child] = true
				out = append(out, child)
				queue = append(queue, child)
			}
		}
	}
	return out
}
