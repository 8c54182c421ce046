package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, GatewayCallDuration)
	assert.NotNil(t, GatewayErrorsTotal)
	assert.NotNil(t, FallbackTotal)
	assert.NotNil(t, SupplierDirectorySize)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
}
