package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveDBQueryCountsErrors(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_op"))

	ObserveDBQuery("test_op", time.Now(), nil)
	ObserveDBQuery("test_op", time.Now(), errors.New("boom"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_op"))
	if after-before != 1 {
		t.Errorf("error counter delta: got %v, want 1", after-before)
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))

	ObserveHTTPRequest("GET", "/test", 200, 5*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))
	if after-before != 1 {
		t.Errorf("request counter delta: got %v, want 1", after-before)
	}
}
