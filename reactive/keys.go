package reactive

// depKey identifies one trackable facet of a wrapped target. Plain
// properties and list slots get their own variants; Length and IterateAll
// are distinct variants rather than magic property names so they can never
// collide with a real key.
type depKey struct {
	kind  keyKind
	name  string
	index int
}

type keyKind uint8

const (
	kindNamed keyKind = iota
	kindIndex
	kindLength
	kindIterate
)

func namedKey(name string) depKey { return depKey{kind: kindNamed, name: name} }
func indexKey(i int) depKey       { return depKey{kind: kindIndex, index: i} }

var (
	lengthKey  = depKey{kind: kindLength}
	iterateKey = depKey{kind: kindIterate}
)

// opType classifies a mutation for trigger fan-out.
type opType uint8

const (
	opSet opType = iota
	opAdd
	opDelete
)
