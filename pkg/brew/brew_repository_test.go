package brew

import (
	"testing"

	"Maltio-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestLatestStarted(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=maltio dbname=maltio sslmode=disable",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var brews []*entities.Brew
		return tx.Scopes(latestStarted).Where("recipe_id = ?", "r1").Limit(5).Find(&brews)
	})

	assert.Contains(t, sql, "ORDER BY started desc nulls last, created_at desc")
}
