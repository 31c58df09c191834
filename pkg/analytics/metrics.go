// Package analytics exposes the product event counters: affiliate clicks are
// the revenue metric, the rest track funnel usage.
package analytics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Recorder struct {
	registry        *prometheus.Registry
	affiliateClicks *prometheus.CounterVec
	quizCompletions prometheus.Counter
	searches        prometheus.Counter
	categoryViews   *prometheus.CounterVec
	subscriptions   prometheus.Counter
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		affiliateClicks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "giftmuse_affiliate_click_total",
			Help: "Outbound affiliate link clicks by retailer and source.",
		}, []string{"retailer", "source"}),
		quizCompletions: factory.NewCounter(prometheus.CounterOpts{
			Name: "giftmuse_quiz_complete_total",
			Help: "Quiz runs that reached the results state.",
		}),
		searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "giftmuse_search_total",
			Help: "Free-text AI gift searches.",
		}),
		categoryViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "giftmuse_category_view_total",
			Help: "Category browse views by slug.",
		}, []string{"category"}),
		subscriptions: factory.NewCounter(prometheus.CounterOpts{
			Name: "giftmuse_subscribe_total",
			Help: "Successful email list signups.",
		}),
	}
}

func (r *Recorder) AffiliateClick(retailer, source string) {
	r.affiliateClicks.WithLabelValues(retailer, source).Inc()
}

func (r *Recorder) QuizCompleted() {
	r.quizCompletions.Inc()
}

func (r *Recorder) Search() {
	r.searches.Inc()
}

func (r *Recorder) CategoryView(slug string) {
	r.categoryViews.WithLabelValues(slug).Inc()
}

func (r *Recorder) Subscribed() {
	r.subscriptions.Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
