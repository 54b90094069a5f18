package driver

import (
	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/intrinsics"
	"ember/internal/parser"
	"ember/internal/sema"
	"ember/internal/source"
	"ember/internal/symbols"
	"ember/internal/syntax"
	"ember/internal/target"
)

// FnRequirements содержит зависимости от рантайма одного тела функции.
type FnRequirements struct {
	Name       string // "foo" или "Type::method"
	Entries    []intrinsics.Entry
	NeedsAlloc bool
}

// CollectFileIntrinsics парсит file и собирает интринзики для каждого тела
// функции (включая методы в impl-блоках), в порядке объявления.
func CollectFileIntrinsics(file *source.File, t target.Target, maxDiagnostics int) ([]FnRequirements, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	root := parser.ParseFile(file, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	table := symbols.Build(root, nil)

	var out []FnRequirements
	for _, item := range root.Children() {
		switch item.Kind {
		case syntax.NodeFn:
			fn, _ := syntax.AsFn(item)
			out = append(out, collectFn(fn, fn.Name(), table, t))
		case syntax.NodeImpl:
			impl, _ := syntax.AsImpl(item)
			for _, fn := range impl.Fns() {
				out = append(out, collectFn(fn, impl.Name()+"::"+fn.Name(), table, t))
			}
		}
	}
	return out, bag
}

func collectFn(fn syntax.FnItem, label string, table *symbols.Table, t target.Target) FnRequirements {
	body := hir.LowerFnBody(fn, table.Strings)
	res := sema.Check(fn, body, table)

	var entries intrinsics.Map
	var needsAlloc bool
	intrinsics.CollectFnBody(&entries, &needsAlloc, body, res, t)

	return FnRequirements{
		Name:       label,
		Entries:    entries.Entries(),
		NeedsAlloc: needsAlloc,
	}
}
