package lexer

import "testing"

func TestSpanAccessors(t *testing.T) {
	source := "Top%3D%31%32"

	word := Of(Word, 0, 3)
	if !word.Is(source, "Top") {
		t.Errorf("Is(Top) = false")
	}
	if word.Is(source, "To") || word.Is(source, "Tops") {
		t.Errorf("Is matched a prefix or extension")
	}

	number := Of(Number, 6, 12)
	n, err := number.Int(source)
	if err != nil {
		t.Fatalf("Int() failed: %v", err)
	}
	if n != 12 {
		t.Errorf("Int() = %d, want 12", n)
	}
	if number.Size() != 6 {
		t.Errorf("Size() = %d, want 6", number.Size())
	}

	if _, err := word.Int(source); err == nil {
		t.Errorf("Int() on a word should fail")
	}
}

func TestSpanString(t *testing.T) {
	if got := Of(Guid, 3, 39).String(); got != "(3, 39) Guid" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}
