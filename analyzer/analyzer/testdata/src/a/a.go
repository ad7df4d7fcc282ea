package a

type Text string

//inject:hotreload
type ContentView struct {
	x string
}

func (c ContentView) Body() Text {
	return Text(c.x)
}

//inject:HotReload
//inject:hotreload
type StoredView struct { // want `This macro is not applicable: HotReload can only be applied to a computed Body method`
	Body Text
}

//inject:HOTRELOAD
type EmptyView struct{} // want `This macro is not applicable: struct does not have a Body member`

//inject:HotReload
type Names []string // want `This macro is not applicable: HotReload can only be applied to struct types`

//inject:Preview
type PreviewView struct{} // want `unknown macro "Preview"`

type (
	//inject:HotReload
	GroupedView struct {
		label string
	}

	//inject:HotReload
	ArgView struct{} // want `This macro is not applicable: HotReload can only be applied to a computed Body method`
)

func (g *GroupedView) Body() (t Text) {
	t = Text(g.label)
	return
}

func (a ArgView) Body(prefix string) Text {
	return Text(prefix)
}
