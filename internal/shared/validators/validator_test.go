package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	Port int    `validate:"required,min=1,max=65535"`
	Mode string `validate:"oneof=dev prod"`
	Host string `validate:"hostname"`
}

type testConfig struct {
	Server testServer
	Name   string     `validate:"required"`
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	err := New().Struct(&testConfig{Server: testServer{Port: 70000, Mode: "test", Host: "not a host"}})
	require.Error(t, err)

	assert.Equal(t, "server.port (max=65535), server.mode (oneof=dev prod), server.host (hostname), name (required)", Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", Describe(errors.New("boom")))
}

func TestDescribe_Var(t *testing.T) {
	t.Parallel()

	err := New().Var("a/b", "required,max=64,alphanum|uuid")
	require.Error(t, err)
	assert.NotEmpty(t, Describe(err))

	assert.NoError(t, New().Var("01HQ3X7Z5V6B2N8M4K9J0P1R2S", "required,max=64,alphanum|uuid"))
	assert.NoError(t, New().Var("3f1c2a7e-8b4d-4e6a-9c1f-2d3e4f5a6b7c", "required,max=64,alphanum|uuid"))
}
