package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"9:5", true},
		{"09:60", true},
		{"0900", true},
		{"", true},
		{"morning", true},
	}

	for _, tt := range tests {
		err := TimeString(tt.value).Validate()
		if tt.wantErr {
			assert.Error(t, err, "value=%q", tt.value)
		} else {
			assert.NoError(t, err, "value=%q", tt.value)
		}
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(25)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:25"), result)

	// Переход через час
	result, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), result)

	// Ровно конец суток
	result, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), result)

	// За пределами суток
	_, err = TimeString("23:30").AddMinutes(31)
	assert.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("09:59").IsAfter("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("UTC+05:30", 5*3600+30*60)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	moment, err := TimeString("09:30").OnDate(date, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, loc), moment)

	_, err = TimeString("bad").OnDate(date, loc)
	assert.Error(t, err)
}

func TestTimeString_JSON(t *testing.T) {
	data, err := json.Marshal(TimeString("09:00"))
	require.NoError(t, err)
	assert.Equal(t, `"09:00"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"14:35"`), &ts))
	assert.Equal(t, TimeString("14:35"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME с секундами
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("14:35:00")))
	assert.Equal(t, TimeString("14:35"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 11, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
