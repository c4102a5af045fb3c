package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stock-tracker/internal/audit"
)

func TestLog_AppendAndEntries(t *testing.T) {
	logs := audit.NewLog()
	assert.Equal(t, 0, logs.Len())

	logs.Append("first")
	logs.Append("second")

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, []string{"first", "second"}, logs.Entries())
}

func TestLog_EntriesReturnsCopy(t *testing.T) {
	logs := audit.NewLog()
	logs.Append("first")

	entries := logs.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"first"}, logs.Entries())
}

func TestEntry_Format(t *testing.T) {
	entry := audit.Entry("Added", 10, "apple")
	assert.Contains(t, entry, "Added 10 of apple")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T`, entry)
}
