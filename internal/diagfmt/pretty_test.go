package diagfmt

import (
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
)

func TestPrettyFormat(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte("fn main() {\n    let x = 1$;\n}\n"))

	bag := diag.NewBag(10)
	// '$' на 2-й строке, байты 25..26
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 25, End: 26}, "unknown character $"))
	bag.Sort()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	out := sb.String()
	if !strings.Contains(out, "test.em:2:14: ERROR LEX1001: unknown character $") {
		t.Errorf("заголовок не совпал:\n%s", out)
	}
	// Контекстная строка и каретка под символом
	if !strings.Contains(out, "    let x = 1$;") {
		t.Errorf("нет контекстной строки:\n%s", out)
	}
	// 2 байта отступа вывода + 13 колонок до '$'
	if !strings.Contains(out, "\n"+strings.Repeat(" ", 15)+"^\n") {
		t.Errorf("каретка не под спаном:\n%s", out)
	}
}

func TestPrettyMultiByteSpanUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte("let abc = 1;\n"))

	bag := diag.NewBag(10)
	// abc: байты 4..7
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 4, End: 7}, "oops"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.Contains(sb.String(), "    ^~~") {
		t.Errorf("подчёркивание должно накрыть весь спан:\n%s", sb.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte("fn f() { }\n"))

	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 2}, "main error").
		WithNote(source.Span{File: id, Start: 3, End: 4}, "see here")
	bag := diag.NewBag(10)
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	if !strings.Contains(sb.String(), "NOTE: see here") {
		t.Errorf("нет заметки:\n%s", sb.String())
	}

	sb.Reset()
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(sb.String(), "see here") {
		t.Error("без ShowNotes заметки не печатаются")
	}
}

func TestPrettyNilInputs(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, nil, nil, PrettyOpts{})
	if sb.Len() != 0 {
		t.Error("nil-входы не должны ничего печатать")
	}
}
