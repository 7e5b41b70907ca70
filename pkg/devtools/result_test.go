package devtools_test

import (
	"encoding/json"
	"testing"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	assert "github.com/stretchr/testify/assert"
)

func Test_result_001(t *testing.T) {
	assert := assert.New(t)

	// Number case
	r := devtools.NewNumber(42)
	assert.Equal(devtools.KindNumber, r.Kind())
	v, ok := r.Number()
	assert.True(ok)
	assert.Equal(42.0, v)
	_, ok = r.Text()
	assert.False(ok)
	assert.Equal("42", r.String())

	// Text case
	r = devtools.NewText("Error: Cannot divide by zero.")
	assert.Equal(devtools.KindText, r.Kind())
	s, ok := r.Text()
	assert.True(ok)
	assert.Equal("Error: Cannot divide by zero.", s)
	_, ok = r.Number()
	assert.False(ok)
}

func Test_result_002(t *testing.T) {
	assert := assert.New(t)

	// Decode from JSON values
	r, err := devtools.Decode(2.5)
	assert.NoError(err)
	assert.Equal("2.5", r.String())

	r, err = devtools.Decode(json.Number("7"))
	assert.NoError(err)
	assert.Equal(devtools.KindInteger, r.Kind())

	r, err = devtools.Decode("Note added: x")
	assert.NoError(err)
	assert.Equal(devtools.KindText, r.Kind())

	// Anything else is malformed
	_, err = devtools.Decode(nil)
	assert.ErrorIs(err, devhelper.ErrUnavailable)
	_, err = devtools.Decode(map[string]any{"x": 1})
	assert.ErrorIs(err, devhelper.ErrUnavailable)
}

func Test_result_003(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(devtools.NewNumber(0.25))
	assert.NoError(err)
	assert.Equal(`0.25`, string(data))

	data, err = json.Marshal(devtools.NewText("No notes found."))
	assert.NoError(err)
	assert.Equal(`"No notes found."`, string(data))
}

func Test_result_004(t *testing.T) {
	assert := assert.New(t)

	// Whole numbers beyond 2^53 stay exact
	r, err := devtools.Decode(json.Number("9007199254740993"))
	assert.NoError(err)
	i, ok := r.Integer()
	assert.True(ok)
	assert.Equal(int64(9007199254740993), i)
	assert.Equal("9007199254740993", r.String())
	data, err := json.Marshal(r)
	assert.NoError(err)
	assert.Equal(`9007199254740993`, string(data))

	// Integers are numbers too
	v, ok := devtools.NewInteger(42).Number()
	assert.True(ok)
	assert.Equal(42.0, v)

	// Fractions are not integers
	r, err = devtools.Decode(json.Number("2.5"))
	assert.NoError(err)
	_, ok = r.Integer()
	assert.False(ok)
	assert.Equal(devtools.KindNumber, r.Kind())
}
