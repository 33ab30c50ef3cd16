package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersAreLabelled(t *testing.T) {
	before := testutil.ToFloat64(SignupsTotal.WithLabelValues(ResultSuccess))
	SignupsTotal.WithLabelValues(ResultSuccess).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SignupsTotal.WithLabelValues(ResultSuccess)))
}

func TestStressChecksSplitBySubstitution(t *testing.T) {
	granted := testutil.ToFloat64(StressChecksTotal.WithLabelValues("camera", "false"))
	StressChecksTotal.WithLabelValues("camera", "true").Inc()
	assert.Equal(t, granted, testutil.ToFloat64(StressChecksTotal.WithLabelValues("camera", "false")))
}
