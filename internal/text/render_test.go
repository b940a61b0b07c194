package text

import "testing"

func TestRender(t *testing.T) {
	img, err := Render("Hello", 200, Style{})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("width = %d, want 200", img.Bounds().Dx())
	}
	if img.Bounds().Dy() == 0 {
		t.Error("rendered image has no height")
	}

	dark := 0
	for _, p := range img.Pix {
		if p < 128 {
			dark++
		}
	}
	if dark == 0 {
		t.Error("no dark pixels were drawn")
	}
}

func TestRenderMultiline(t *testing.T) {
	one, err := Render("a", 100, Style{PointSize: 12})
	if err != nil {
		t.Fatal(err)
	}
	two, err := Render("a\nb", 100, Style{PointSize: 12})
	if err != nil {
		t.Fatal(err)
	}
	if two.Bounds().Dy() <= one.Bounds().Dy() {
		t.Errorf("two lines (%d) not taller than one (%d)",
			two.Bounds().Dy(), one.Bounds().Dy())
	}
}
