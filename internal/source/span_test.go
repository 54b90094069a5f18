package source

import "testing"

func TestSpanBasics(t *testing.T) {
	sp := Span{File: 1, Start: 3, End: 7}
	if sp.Empty() {
		t.Error("непустой span не должен быть Empty")
	}
	if sp.Len() != 4 {
		t.Errorf("Len = %d, ожидали 4", sp.Len())
	}
	if got := sp.String(); got != "1:3-7" {
		t.Errorf("String = %q", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 8}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = %v", got)
	}

	// Разные файлы не объединяются
	c := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(c); got != a {
		t.Errorf("Cover через файлы должен вернуть исходный span, получили %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 1, Start: 0, End: 20}
	inner := Span{File: 1, Start: 5, End: 10}

	if !outer.Contains(inner) {
		t.Error("outer должен содержать inner")
	}
	if inner.Contains(outer) {
		t.Error("inner не должен содержать outer")
	}
	if !outer.Contains(outer) {
		t.Error("span должен содержать сам себя")
	}

	other := Span{File: 2, Start: 5, End: 10}
	if outer.Contains(other) {
		t.Error("span из другого файла не содержится")
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.em", []byte("fn main() {\n    let x = 1;\n}\n"))

	// "let" начинается на второй строке, колонка 5
	start, end := fs.Resolve(Span{File: id, Start: 16, End: 19})
	if start.Line != 2 || start.Col != 5 {
		t.Errorf("start = %+v, ожидали 2:5", start)
	}
	if end.Line != 2 || end.Col != 8 {
		t.Errorf("end = %+v, ожидали 2:8", end)
	}
}

func TestFileSetHashStableAcrossAdds(t *testing.T) {
	fs := NewFileSet()
	content := []byte("struct Point { x: int }\n")

	id1 := fs.Add("a.em", content, 0)
	id2 := fs.Add("b.em", content, 0)

	if fs.Get(id1).Hash != fs.Get(id2).Hash {
		t.Error("одинаковое содержимое должно давать одинаковый Hash")
	}
	if id1 == id2 {
		t.Error("каждый Add должен выдавать новый FileID")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.em", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, c := range cases {
		if got := f.GetLine(c.line); got != c.want {
			t.Errorf("GetLine(%d) = %q, ожидали %q", c.line, got, c.want)
		}
	}
}
