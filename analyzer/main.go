package main

import (
	"github.com/go-easy-hotreload/go-easy-hotreload/analyzer/analyzer"
	"golang.org/x/tools/go/analysis/multichecker"
)

func main() {
	multichecker.Main(analyzer.Analyzer)
}
