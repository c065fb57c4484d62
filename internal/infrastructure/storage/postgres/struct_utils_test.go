package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stockpilot/internal/core/entity"
	"stockpilot/internal/core/id"
)

type MockCatalog struct {
	entity.Catalog
	Phone    string    `db:"phone" json:"phone"`
	DueDate  time.Time `db:"due_date" json:"dueDate"`
	Internal string    `db:"-"`
	NoTag    string
}

func TestExtractDBColumns_EmbeddedFields(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{"id", "name", "phone", "due_date"}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}

	assert.NotContains(t, cols, "-")
	assert.Len(t, cols, len(expectedCols))
}

func TestStructToMap_EmbeddedFields(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cat := MockCatalog{
		Catalog: entity.Catalog{
			ID:   id.New(),
			Name: "Test Name",
		},
		Phone:    "11999990000",
		DueDate:  due,
		Internal: "skipped",
		NoTag:    "skipped",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, "11999990000", m["phone"])
	assert.Equal(t, due, m["due_date"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 4)
}

func TestStructToMap_Pointer(t *testing.T) {
	cat := &MockCatalog{
		Catalog: entity.Catalog{ID: "abc", Name: "ptr"},
	}

	m := StructToMap(cat)

	assert.Equal(t, "abc", m["id"])
	assert.Equal(t, "ptr", m["name"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("nope"))
}
