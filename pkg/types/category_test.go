package types

import "testing"

// TestCategoryOrder 验证分类的前后顺序
func TestCategoryOrder(t *testing.T) {
	tests := []struct {
		name    string
		cat     Category
		next    Category
		hasNext bool
		prev    Category
		hasPrev bool
	}{
		{"memories", CategoryMemories, CategoryReasons, true, CategoryMemories, false},
		{"reasons", CategoryReasons, CategoryFuture, true, CategoryMemories, true},
		{"future", CategoryFuture, CategoryFuture, false, CategoryReasons, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.cat.Next()
			if ok != tt.hasNext || next != tt.next {
				t.Errorf("Next(): got (%v, %v), want (%v, %v)", next, ok, tt.next, tt.hasNext)
			}
			prev, ok := tt.cat.Prev()
			if ok != tt.hasPrev || prev != tt.prev {
				t.Errorf("Prev(): got (%v, %v), want (%v, %v)", prev, ok, tt.prev, tt.hasPrev)
			}
		})
	}
}

// TestCategoryInvalid 验证未定义的分类值
func TestCategoryInvalid(t *testing.T) {
	bad := Category(42)
	if bad.IsValid() {
		t.Error("Category(42) should be invalid")
	}
	if _, ok := bad.Next(); ok {
		t.Error("invalid category should have no next")
	}
	if _, ok := bad.Prev(); ok {
		t.Error("invalid category should have no prev")
	}
	if bad.Key() != "" || bad.String() != "Unknown" {
		t.Errorf("unexpected names for invalid category: %q %q", bad.Key(), bad.String())
	}
}

// TestCategoriesReturnsCopy 验证 Categories 返回的切片可以安全修改
func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	if len(cats) != CategoryCount {
		t.Fatalf("expected %d categories, got %d", CategoryCount, len(cats))
	}
	cats[0] = CategoryFuture
	if Categories()[0] != CategoryMemories {
		t.Error("modifying returned slice must not affect the lookup table")
	}
}

// TestStageString 验证阶段名称
func TestStageString(t *testing.T) {
	want := map[Stage]string{
		StagePreface:  "Preface",
		StageJourney:  "Journey",
		StageGame:     "Game",
		StageEpilogue: "Epilogue",
		Stage(9):      "Unknown",
	}
	for s, name := range want {
		if s.String() != name {
			t.Errorf("Stage(%d).String() = %q, want %q", int(s), s.String(), name)
		}
	}
}
