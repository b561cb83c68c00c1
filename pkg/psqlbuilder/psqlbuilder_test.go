package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("spaces").
		Where(squirrel.Eq{"id": 7}).
		Where(squirrel.Eq{"is_available": true}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM spaces WHERE id = $1 AND is_available = $2", query)
	assert.Equal(t, []interface{}{7, true}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("slots").
		Set("occupied", false).
		Where(squirrel.Eq{"id": 3}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE slots SET occupied = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{false, 3}, args)
}
