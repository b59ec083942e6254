package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// NoDirectOsExit запрещает вызов os.Exit непосредственно в функции main пакета main.
// Бот должен завершаться через отмену контекста, иначе не закрываются long polling и http сервер.
// nolint:gochecknoglobals
var NoDirectOsExit = &analysis.Analyzer{
	Name:     "nodirectosexit",
	Doc:      "check for direct os.Exit calls in main function of package main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoDirectOsExit,
}

func runNoDirectOsExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}

	insp, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn, _ := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}
		// Файлы из кэша сборки (сгенерированный main для тестов) не проверяем
		if strings.Contains(pass.Fset.Position(fn.Pos()).Filename, "go-build") {
			return
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			// Вызовы внутри замыканий выполняются не в main
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if isOsExit(pass, call) {
				pass.Reportf(call.Pos(), "direct call os.Exit is not allowed in main function")
			}
			return true
		})
	})

	return nil, nil //nolint:nilnil
}

// isOsExit проверяет по типам, а не по имени, поэтому ловит и импорт с алиасом.
func isOsExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
