package facts

import "fmt"

// Entry is a fact discovered about a named type.
type Entry struct {
	Name string
	Fact Fact
}

func (e Entry) String() string {
	return fmt.Sprintf("{Name: %s, Fact: %s}", e.Name, e.Fact)
}

type Fact uint8

const (
	// maximumFactValue is the value of the highest currently known Fact.
	maximumFactValue = 2

	// None is the default value for Fact.
	// Getting a Fact of type None means there are no facts for the given key.
	None Fact = 0

	// ViewDeclaration is a Fact that represents a type annotated with a macro directive.
	ViewDeclaration Fact = 1

	// Instrumented is a Fact that represents a struct type that already carries an
	// injection observer field, and must not be instrumented again.
	Instrumented Fact = 2
)

func (f Fact) String() string {
	switch f {
	case None:
		return "None"
	case ViewDeclaration:
		return "ViewDeclaration"
	case Instrumented:
		return "Instrumented"
	default:
		return "Unknown"
	}
}
