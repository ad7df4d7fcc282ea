package main

import (
	"fmt"
	"strings"
)

// View is anything that can render itself as text.
type View interface {
	Body() string
}

//inject:hotreload
type Header struct {
	title string
}

func (h Header) Body() string {
	return strings.ToUpper(h.title)
}

//inject:hotreload
type Counter struct {
	count int
}

func (c *Counter) Body() (label string) {
	label = fmt.Sprintf("count: %d", c.count)
	if c.count > 10 {
		label = "count: many"
	}
	return
}

// Status stores its text, so it cannot be instrumented.
//
//inject:hotreload
type Status struct {
	Body string
}

func main() {
	views := []View{
		Header{title: "demo"},
		&Counter{count: 3},
	}
	for _, v := range views {
		fmt.Println(v.Body())
	}
	fmt.Println(Status{Body: "ok"}.Body)
}
