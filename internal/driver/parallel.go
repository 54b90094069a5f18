package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ember/internal/astid"
	"ember/internal/diag"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/syntax"
)

// AssignDirResult содержит результат парсинга и назначения identity одного файла
type AssignDirResult struct {
	Path   string        // Относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Root   *syntax.Node  // Корень синтаксического дерева
	Items  *astid.Map    // Identity map файла
	Bag    *diag.Bag     // Диагностики
}

// listEmFiles возвращает отсортированный список всех *.em файлов в директории
func listEmFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".em") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// AssignDir парсит все *.em файлы в директории параллельно и строит
// identity map каждого файла.
func AssignDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []AssignDirResult, error) {
	files, err := listEmFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make([]source.FileID, len(files))
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			return nil, nil, err
		}
		fileIDs[i] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]AssignDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			file := fileSet.Get(fileIDs[i])
			root := parser.ParseFile(file, parser.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})
			results[i] = AssignDirResult{
				Path:   path,
				FileID: fileIDs[i],
				Root:   root,
				Items:  astid.FromSource(root),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
