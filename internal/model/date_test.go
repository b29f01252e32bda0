package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate_DaysUntil(t *testing.T) {
	t.Parallel()
	today := NewDate(2024, time.March, 10)

	require.Equal(t, 7, today.DaysUntil(today.AddDays(7)))
	require.Equal(t, -3, today.DaysUntil(today.AddDays(-3)))
	require.Equal(t, 0, today.DaysUntil(today))
}

func TestDate_Before(t *testing.T) {
	t.Parallel()
	due := NewDate(2024, time.March, 10)

	require.True(t, due.Before(due.AddDays(1)))
	require.False(t, due.Before(due))
	require.False(t, due.AddDays(1).Before(due))
}

func TestDate_AddDaysAcrossMonth(t *testing.T) {
	t.Parallel()
	d := NewDate(2024, time.February, 26)
	require.Equal(t, NewDate(2024, time.March, 4), d.AddDays(7))
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewDate(2024, time.March, 10))
	require.NoError(t, err)
	require.Equal(t, `"2024-03-10"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-10"`), &d))
	require.True(t, d.Equal(NewDate(2024, time.March, 10)))

	require.Error(t, json.Unmarshal([]byte(`20240310`), &d))
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)))
	require.True(t, d.Equal(NewDate(2024, time.March, 10)))

	require.NoError(t, d.Scan("2024-04-01"))
	require.True(t, d.Equal(NewDate(2024, time.April, 1)))

	require.Error(t, d.Scan(42))
}
