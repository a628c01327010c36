package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringArg(t *testing.T) {
	args := map[string]any{
		"name":    "  api-0  ",
		"number":  42,
		"empty":   "",
		"boolean": true,
	}

	assert.Equal(t, "api-0", StringArg(args, "name"))
	assert.Equal(t, "", StringArg(args, "number"))
	assert.Equal(t, "", StringArg(args, "empty"))
	assert.Equal(t, "", StringArg(args, "boolean"))
	assert.Equal(t, "", StringArg(args, "absent"))
	assert.Equal(t, "", StringArg(nil, "name"))
}

func TestBoolArg(t *testing.T) {
	args := map[string]any{
		"yes":    true,
		"no":     false,
		"string": "true",
	}

	assert.True(t, BoolArg(args, "yes"))
	assert.False(t, BoolArg(args, "no"))
	assert.False(t, BoolArg(args, "string"))
	assert.False(t, BoolArg(args, "absent"))
}

func TestNumberArg(t *testing.T) {
	args := map[string]any{
		"float":  float64(3.5),
		"int":    7,
		"int64":  int64(9),
		"string": "12",
	}

	value, ok := NumberArg(args, "float")
	assert.True(t, ok)
	assert.Equal(t, 3.5, value)

	value, ok = NumberArg(args, "int")
	assert.True(t, ok)
	assert.Equal(t, float64(7), value)

	value, ok = NumberArg(args, "int64")
	assert.True(t, ok)
	assert.Equal(t, float64(9), value)

	_, ok = NumberArg(args, "string")
	assert.False(t, ok)

	_, ok = NumberArg(args, "absent")
	assert.False(t, ok)
}
