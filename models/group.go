package models

// Group is a concurrency partition of the entry store. All entries of the
// model types routed to a group are mutated only by that group's worker.
type Group int

const (
	// GroupPassive is the fallback group: work for types that have no
	// dedicated worker runs inline on the caller's goroutine.
	GroupPassive Group = iota
	GroupUI
	GroupDB
	GroupHistory
	GroupPassword
)

var groupNames = map[Group]string{
	GroupPassive:  "GROUP_PASSIVE",
	GroupUI:       "GROUP_UI",
	GroupDB:       "GROUP_DB",
	GroupHistory:  "GROUP_HISTORY",
	GroupPassword: "GROUP_PASSWORD",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "GROUP_UNKNOWN"
}

// RoutingInfo maps each syncable model type to the group whose worker is
// responsible for mutating entries of that type.
type RoutingInfo map[ModelType]Group

// GroupForModelType resolves the group owning t. Types absent from the
// routing table fall back to GroupPassive.
func GroupForModelType(t ModelType, routing RoutingInfo) Group {
	if group, ok := routing[t]; ok {
		return group
	}
	return GroupPassive
}

// Groups returns the distinct set of groups present in the routing table.
func (r RoutingInfo) Groups() []Group {
	seen := make(map[Group]struct{}, len(r))
	groups := make([]Group, 0, len(r))
	for _, g := range r {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		groups = append(groups, g)
	}
	return groups
}
