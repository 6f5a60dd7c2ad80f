package rounded

import (
	"image"
	"sync"
	"testing"
)

func TestMemoKey(t *testing.T) {
	tr := NewTransformationBuilder().CornerRadius(3).Build()
	if got, want := MemoKey("cat.png", tr), "cat.png|"+tr.Key(); got != want {
		t.Errorf("MemoKey() = %q, want %q", got, want)
	}
}

func TestMemoTransform(t *testing.T) {
	m := NewMemo(0)
	tr := NewTransformationBuilder().CornerRadius(3).Build()
	img := solidImage(8, 8, opaqueGreen)

	first, err := m.Transform("a", img, tr)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Transform("a", img, tr)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second call should return the cached bitmap")
	}
	if s := m.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", s)
	}

	other := NewTransformationBuilder().CornerRadius(4).Build()
	if _, err := m.Transform("a", img, other); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Transform("b", img, tr); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() after Clear = %d", m.Len())
	}
}

func TestMemoDoesNotCacheErrors(t *testing.T) {
	m := NewMemo(0)
	tr := NewTransformationBuilder().Build()
	if _, err := m.Transform("bad", image.NewRGBA(image.Rect(0, 0, 0, 0)), tr); err == nil {
		t.Fatal("expected an error for an empty image")
	}
	if m.Len() != 0 {
		t.Error("errors must not be cached")
	}
	if _, err := m.Transform("bad", solidImage(2, 2, opaqueGreen), tr); err != nil {
		t.Errorf("retry after error: %v", err)
	}
}

func TestMemoConcurrent(t *testing.T) {
	m := NewMemo(1 << 20)
	tr := NewTransformationBuilder().Oval(true).Build()
	img := solidImage(8, 8, opaqueGreen)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if _, err := m.Transform("shared", img, tr); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if s := m.Stats(); s.Misses != 1 {
		t.Errorf("misses = %d, want 1", s.Misses)
	}
}
