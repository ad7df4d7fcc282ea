package b

type Embedded struct{}

func (Embedded) Render() string { return "" }

type Body struct{ Embedded }

//inject:HotReload
type Wrapper struct { // want `This macro is not applicable: Body member is not a field or method declaration`
	Body
}

// Plain types without directives are never reported.
type Plain struct {
	Body int
}
