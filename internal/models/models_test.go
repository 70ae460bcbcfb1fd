package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStatus(t *testing.T) {
	for _, s := range []string{"new", "pending", "accepted", "rejected"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s == "new", st.Editable())
	}

	_, err := ParseStatus("archived")
	assert.Error(t, err)
}

func TestCoordsInput_AcceptsNumbersAndStrings(t *testing.T) {
	var c CoordsInput
	err := json.Unmarshal([]byte(`{"latitude":"45.3842","longitude":7.1525,"height":"1200"}`), &c)
	require.NoError(t, err)

	assert.Equal(t, Float(45.3842), *c.Latitude)
	assert.Equal(t, Float(7.1525), *c.Longitude)
	assert.Equal(t, Int(1200), *c.Height)

	var zero CoordsInput
	require.NoError(t, json.Unmarshal([]byte(`{"latitude":0,"longitude":"0","height":0}`), &zero))
	assert.NotNil(t, zero.Latitude)
	assert.NotNil(t, zero.Longitude)
	assert.NotNil(t, zero.Height)

	var missing CoordsInput
	require.NoError(t, json.Unmarshal([]byte(`{"latitude":null}`), &missing))
	assert.Nil(t, missing.Latitude)

	assert.Error(t, json.Unmarshal([]byte(`{"height":"high"}`), &c))
	assert.Error(t, json.Unmarshal([]byte(`{"height":12.5}`), &c))
}

func TestUserIdentity_Matches(t *testing.T) {
	owner := User{Email: "a@b.co", Phone: "+79001234567", Fam: "Пупкин", Name: "Василий", Otc: ""}

	assert.True(t, UserIdentity{Email: strPtr("a@b.co")}.Matches(owner))
	assert.True(t, UserIdentity{
		Email: strPtr("a@b.co"), Phone: strPtr("+79001234567"),
		Fam: strPtr("Пупкин"), Name: strPtr("Василий"), Otc: strPtr(""),
	}.Matches(owner))
	assert.False(t, UserIdentity{Email: strPtr("a@b.co"), Name: strPtr("Пётр")}.Matches(owner))
	assert.False(t, UserIdentity{}.Matches(owner))
}

func TestPassUpdate_Changes(t *testing.T) {
	lat := Float(0)
	h := Int(2500)
	u := PassUpdate{
		Title:   strPtr("Новый"),
		AddTime: strPtr("2022-05-01 08:30:00"),
		Coords:  &CoordsUpdate{Latitude: &lat, Height: &h},
		Level:   &LevelUpdate{Winter: strPtr("2А")},
		User:    &UserIdentity{Email: strPtr("a@b.co")},
	}

	changes, err := u.Changes()
	require.NoError(t, err)
	assert.Equal(t, []FieldChange{
		{Column: "title", Value: "Новый"},
		{Column: "add_time", Value: time.Date(2022, 5, 1, 8, 30, 0, 0, time.UTC)},
		{Column: "latitude", Value: float64(0)},
		{Column: "height", Value: 2500},
		{Column: "winter", Value: "2А"},
	}, changes)

	empty, err := PassUpdate{User: &UserIdentity{Email: strPtr("a@b.co")}, Coords: &CoordsUpdate{}}.Changes()
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = PassUpdate{AddTime: strPtr("bad")}.Changes()
	assert.Error(t, err)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(ErrPassNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrPassNotEditable, ErrConflict))
	assert.True(t, errors.Is(ErrOwnerMismatch, ErrConflict))
	assert.True(t, errors.Is(ErrNothingToUpdate, ErrInvalid))

	assert.NoError(t, NewValidationError(nil))

	err := NewValidationError(map[string]string{"title": "field is required", "add_time": "bad"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, "validation failed: add_time: bad, title: field is required", err.Error())
}
