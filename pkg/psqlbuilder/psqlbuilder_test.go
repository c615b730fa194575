package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("slots").
		Where(squirrel.Eq{"booked": false}).
		Where("start_date::date = ?", "2024-05-03").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM slots WHERE booked = $1 AND start_date::date = $2", query)
	assert.Equal(t, []interface{}{false, "2024-05-03"}, args)
}
