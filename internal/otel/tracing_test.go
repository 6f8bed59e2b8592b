package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplerFrom(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "always_on", want: "AlwaysOnSampler"},
		{name: "always_off", want: "AlwaysOffSampler"},
		{name: "traceidratio", arg: "0.25", want: "TraceIDRatioBased{0.25}"},
		{name: "traceidratio", arg: "lots", want: "AlwaysOnSampler"},
		{name: "parentbased_traceidratio", arg: "0.5", want: "ParentBased{root:TraceIDRatioBased{0.5}"},
		{name: "parentbased_always_off", want: "ParentBased{root:AlwaysOffSampler"},
		{name: "", want: "ParentBased{root:AlwaysOnSampler"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			assert.Contains(t, samplerFrom(tt.name, tt.arg).Description(), tt.want)
		})
	}
}

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	shutdown, err := Init(context.Background())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	assert.Equal(t, "", getEnv("OTEL_SERVICE_NAME", DefaultServiceName))
	assert.Equal(t, DefaultServiceName, getEnv("OTEL_TEST_UNSET_KEY", DefaultServiceName))
}

func TestNewExporter_UnsupportedProtocol(t *testing.T) {
	exp, err := newExporter(context.Background(), "thrift")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported OTLP protocol: thrift")
	assert.Nil(t, exp)
}

func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "thrift")

	shutdown, err := Init(context.Background())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestGetEnvNonEmpty(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLER", "")
	assert.Equal(t, "always_on", getEnvNonEmpty("OTEL_TRACES_SAMPLER", "always_on"))
	t.Setenv("OTEL_TRACES_SAMPLER", "always_off")
	assert.Equal(t, "always_off", getEnvNonEmpty("OTEL_TRACES_SAMPLER", "always_on"))
}
