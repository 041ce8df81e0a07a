package bookings

import (
	"testing"

	"ticketly/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// The availability check only serializes concurrent bookings if the SELECT
// actually carries a row lock.
func TestLockForUpdateEmitsRowLock(t *testing.T) {
	db := dryRunDB(t)

	stmt := lockForUpdate(db).
		Where("id = ?", uuid.New()).
		First(&events.Event{}).Statement

	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}

func TestInventoryDecrementIsGuarded(t *testing.T) {
	db := dryRunDB(t)

	stmt := db.Model(&events.Event{}).
		Where("id = ? AND available_tickets >= ?", uuid.New(), 2).
		Update("available_tickets", gorm.Expr("available_tickets - ?", 2)).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "available_tickets >= ")
	assert.Contains(t, sql, "available_tickets - ")
}
