package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizdash_api_requests_total",
		Help: "Total number of backend API requests",
	}, []string{"method", "route", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bizdash_api_request_duration_seconds",
		Help:    "Duration of backend API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	wizardSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizdash_wizard_child_creations_total",
		Help: "Child records created by the business wizard, by entity and result",
	}, []string{"entity", "result"})

	locatorResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizdash_business_locator_resolutions_total",
		Help: "How the wizard resolved the id of a newly created business",
	}, []string{"strategy"})
)

var numericSegment = regexp.MustCompile(`/\d+(/|$)`)

// Route collapses numeric path segments so that label cardinality stays bounded.
func Route(path string) string {
	for numericSegment.MatchString(path) {
		path = numericSegment.ReplaceAllString(path, "/{id}$1")
	}
	return path
}

// ObserveAPIRequest records a backend request. status 0 means no response.
func ObserveAPIRequest(method, path string, status int, duration time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	route := Route(path)
	apiRequestsTotal.WithLabelValues(method, route, code).Inc()
	apiRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// ObserveWizardCreation counts one child creation of the business wizard.
func ObserveWizardCreation(entity string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	wizardSubmissions.WithLabelValues(entity, result).Inc()
}

// ObserveLocatorResolution counts which fallback located a created business.
func ObserveLocatorResolution(strategy string) {
	locatorResolutions.WithLabelValues(strategy).Inc()
}

// Transport records request metrics for every outgoing request.
func Transport() middleware.Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return middleware.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			ObserveAPIRequest(r.Method, r.URL.Path, status, time.Since(start))
			return resp, err
		})
	}
}

// WriteTextfile dumps the default registry in the node exporter textfile format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
