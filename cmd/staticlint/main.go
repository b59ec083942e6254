// Команда staticlint запускает набор анализаторов, которыми проверяется код бота.
//
//	go run ./cmd/staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// extraChecks проверки staticcheck вне класса SA.
// nolint:gochecknoglobals
var extraChecks = map[string]bool{
	"ST1000": true, // документация пакета
	"ST1005": true, // формат текста ошибок
	"S1008":  true, // упрощение return bool
	"S1021":  true, // объединение объявления и присваивания
}

func main() {
	multichecker.Main(buildAnalyzers()...)
}

// buildAnalyzers собирает стандартные анализаторы, все SA проверки staticcheck,
// выбранные проверки других классов и собственный NoDirectOsExit.
func buildAnalyzers() []*analysis.Analyzer {
	analyzers := []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
	}

	for _, v := range staticcheck.Analyzers {
		if len(v.Analyzer.Name) > 2 && v.Analyzer.Name[:2] == "SA" {
			analyzers = append(analyzers, v.Analyzer)
		}
	}
	analyzers = append(analyzers, selectChecks(stylecheck.Analyzers, extraChecks)...)
	analyzers = append(analyzers, selectChecks(simple.Analyzers, extraChecks)...)

	return append(analyzers, NoDirectOsExit)
}

func selectChecks(from []*lint.Analyzer, names map[string]bool) []*analysis.Analyzer {
	var result []*analysis.Analyzer
	for _, v := range from {
		if names[v.Analyzer.Name] {
			result = append(result, v.Analyzer)
		}
	}
	return result
}
