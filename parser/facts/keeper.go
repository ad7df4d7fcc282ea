package facts

import "fmt"

// Keeper records facts about the types of a package, keyed by type name.
type Keeper map[string]Fact

func NewKeeper() Keeper {
	return make(Keeper)
}

// AddFact records a fact for a type. A type may only move to a higher fact:
// a ViewDeclaration can later be found to be Instrumented, but never the reverse.
func (fm Keeper) AddFact(entry Entry) error {
	if entry.Fact == None {
		return fmt.Errorf("invalid fact kind: %s", entry.Fact.String())
	}
	if entry.Fact > maximumFactValue {
		return fmt.Errorf("unknown fact: %d", entry.Fact)
	}
	if entry.Name == "" {
		return fmt.Errorf("empty fact name")
	}

	if existing, ok := fm[entry.Name]; ok && existing >= entry.Fact {
		return fmt.Errorf("fact already exists: %s is %s", entry.Name, existing)
	}

	fm[entry.Name] = entry.Fact
	return nil
}

func (fm Keeper) GetFact(name string) Fact {
	return fm[name]
}
