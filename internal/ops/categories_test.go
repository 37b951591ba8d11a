package ops

import (
	"reflect"
	"testing"

	"github.com/hpungsan/todo/internal/task"
)

func TestCategories_CountsSortedByName(t *testing.T) {
	st := testStore(t)
	seedStore(t, st)

	output, err := Categories(st)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}

	want := []CategoryCount{
		{Name: "Errands", Count: 1},
		{Name: "General", Count: 1},
		{Name: "Work", Count: 2},
	}
	if !reflect.DeepEqual(output.Categories, want) {
		t.Errorf("Categories = %+v, want %+v", output.Categories, want)
	}
	if output.Total != 4 {
		t.Errorf("Total = %d, want 4", output.Total)
	}
}

func TestCategories_Empty(t *testing.T) {
	st := testStore(t)

	output, err := Categories(st)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(output.Categories) != 0 {
		t.Errorf("expected no categories, got %+v", output.Categories)
	}
	if output.Total != 0 {
		t.Errorf("Total = %d, want 0", output.Total)
	}
}

func TestCategories_CaseSensitiveNames(t *testing.T) {
	st := testStore(t)
	tasks := []task.Task{
		task.New("a", "Work"),
		task.New("b", "work"),
	}
	if err := st.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	output, err := Categories(st)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}

	// Counting is case-sensitive even though list filtering is not.
	want := []CategoryCount{
		{Name: "Work", Count: 1},
		{Name: "work", Count: 1},
	}
	if !reflect.DeepEqual(output.Categories, want) {
		t.Errorf("Categories = %+v, want %+v", output.Categories, want)
	}
}
