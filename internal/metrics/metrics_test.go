package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/gyms", "200"))

	RecordHTTPRequest("GET", "/api/gyms", "200", 0.05)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/gyms", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordEntityCreated(t *testing.T) {
	before := testutil.ToFloat64(EntitiesCreatedTotal.WithLabelValues("gym"))

	RecordEntityCreated("gym")

	after := testutil.ToFloat64(EntitiesCreatedTotal.WithLabelValues("gym"))
	assert.Equal(t, before+1, after)
}

func TestRecordEntityDeleted(t *testing.T) {
	before := testutil.ToFloat64(EntitiesDeletedTotal.WithLabelValues("plan"))

	RecordEntityDeleted("plan")

	after := testutil.ToFloat64(EntitiesDeletedTotal.WithLabelValues("plan"))
	assert.Equal(t, before+1, after)
}

func TestRecordMembershipCreated(t *testing.T) {
	beforeCounter := testutil.ToFloat64(MembershipsCreatedTotal)
	beforeEntity := testutil.ToFloat64(EntitiesCreatedTotal.WithLabelValues("membership"))

	RecordMembershipCreated()

	assert.Equal(t, beforeCounter+1, testutil.ToFloat64(MembershipsCreatedTotal))
	assert.Equal(t, beforeEntity+1, testutil.ToFloat64(EntitiesCreatedTotal.WithLabelValues("membership")))
}
