// registry.go holds the hand-authored species groups keyed by eBird common name
package birdgroups

import "slices"

// Group is a named set of eBird common names, kept in authored order.
type Group struct {
	Name    string   `yaml:"name" json:"name"`
	Species []string `yaml:"species" json:"species"`
}

// Registry is the ordered list of groups. Order matters: the index reports
// the earlier group as the existing one when a species is declared twice,
// and reports list groups in this order.
type Registry []Group

// Clone returns a deep copy of the registry
func (r Registry) Clone() Registry {
	if r == nil {
		return nil
	}
	clone := make(Registry, len(r))
	for i, g := range r {
		clone[i] = Group{Name: g.Name, Species: slices.Clone(g.Species)}
	}
	return clone
}

// Names returns the group names in registry order
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, g := range r {
		names[i] = g.Name
	}
	return names
}

// SpeciesCount returns the number of species entries across all groups,
// counting duplicates as written
func (r Registry) SpeciesCount() int {
	n := 0
	for _, g := range r {
		n += len(g.Species)
	}
	return n
}

// DefaultRegistry returns a copy of the built-in groups.
func DefaultRegistry() Registry {
	return defaultRegistry.Clone()
}

var defaultRegistry = Registry{
	{
		Name: "Dabbling Ducks",
		Species: []string{
			"Mallard",
			"American black duck",
			"Mallard/American Black Duck",
			"Gadwall",
			"American wigeon",
			"Northern pintail",
			"Northern shoveler",
			"Green-winged teal",
			"Blue-winged teal",
			"Wood duck",
		},
	},
	{
		Name: "Diving Ducks",
		Species: []string{
			"Canvasback",
			"Redhead",
			"Ring-necked duck",
			"Greater scaup",
			"Lesser scaup",
			"Common goldeneye",
			"Bufflehead",
			"Long-tailed duck",
			"Ruddy duck",
			"White-winged scoter",
		},
	},
	{
		Name: "Geese",
		Species: []string{
			"Canada goose",
			"Snow goose",
			"Ross's goose",
			"Greater white-fronted goose",
			"Brant",
			"Red-breasted goose",
		},
	},
	{
		Name: "Swans",
		Species: []string{
			"Mute swan",
			"Trumpeter swan",
			"Tundra swan",
			"Black swan",
		},
	},
	{
		Name: "Grebes",
		Species: []string{
			"Pied-billed grebe",
			"Eared grebe",
		},
	},
	{
		Name: "Herons & Egrets",
		Species: []string{
			"Great blue heron",
			"Great egret",
			"Green heron",
		},
	},
	{
		Name: "Pelicans & Cormorants",
		Species: []string{
			"American white pelican",
			"Double-crested cormorant",
		},
	},
	{
		Name: "Gulls & Terns",
		Species: []string{
			"American Herring Gull",
			"Ring-billed gull",
			"Caspian tern",
			"Common tern",
		},
	},
	{
		Name: "Cranes",
		Species: []string{
			"Sandhill crane",
			"Whooping crane",
		},
	},
	{
		Name: "Raptors - Hawks & Eagles",
		Species: []string{
			"Bald eagle",
			"Golden eagle",
			"Red-tailed hawk",
			"Red-shouldered hawk",
			"Cooper's hawk",
			"Sharp-shinned hawk",
			"Broad-winged hawk",
			"Rough-legged hawk",
			"Northern harrier",
		},
	},
	{
		Name: "Raptors - Falcons",
		Species: []string{
			"Peregrine falcon",
			"American kestrel",
			"Osprey",
		},
	},
	{
		Name: "Owls",
		Species: []string{
			"Great horned owl",
			"Barred owl",
			"Eastern Screech-Owl",
			"Snowy owl",
		},
	},
	{
		Name: "Vultures",
		Species: []string{
			"Turkey vulture",
			"Black vulture",
		},
	},
	{
		Name: "Passerines",
		Species: []string{
			"American robin",
			"Barn swallow",
			"Dark-eyed junco",
			"Hermit thrush",
			"Horned lark",
			"Red-winged blackbird",
			"Blue jay",
			"American crow",
			"Common raven",
			"European starling",
			"House sparrow",
		},
	},
	{
		Name: "Pigeons & Coots",
		Species: []string{
			"Rock pigeon",
			"American coot",
		},
	},
}
