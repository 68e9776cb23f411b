// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJson(t *testing.T) {
	data := []byte(`{"name": "John", "age": 30}`)
	u := newUnmarshaler(data, ".json")

	var dst map[string]interface{}

	err := u.unmarshal(&dst)

	require.NoError(t, err)
	assert.Equal(t, "John", dst["name"])
	assert.InEpsilon(t, float64(30), dst["age"], 0.01)
}

func TestUnmarshalYaml(t *testing.T) {
	data := []byte(`
name: John
age: 30
`)
	for _, ext := range []string{".yaml", "yml", ".YAML"} {
		u := newUnmarshaler(data, ext)

		var dst map[string]interface{}

		err := u.unmarshal(&dst)

		require.NoError(t, err)
		assert.Equal(t, "John", dst["name"])
		assert.Equal(t, int(30), dst["age"])
	}
}

func TestUnmarshalToml(t *testing.T) {
	data := []byte(`
name = "John"
age = 30
`)
	u := newUnmarshaler(data, ".toml")

	var dst map[string]interface{}

	err := u.unmarshal(&dst)

	require.NoError(t, err)
	assert.Equal(t, "John", dst["name"])
	assert.Equal(t, int64(30), dst["age"])
}

func TestUnmarshalUnsupported(t *testing.T) {
	var dst map[string]interface{}
	err := newUnmarshaler([]byte(`name=John`), ".ini").unmarshal(&dst)
	assert.ErrorContains(t, err, "unsupported extension: .ini")
}
