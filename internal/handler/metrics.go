package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	estimatesCalculated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gfe_estimates_calculated_total",
		Help: "Pricing estimates calculated.",
	})
	tierComparisons = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gfe_tier_comparisons_total",
		Help: "Tier comparisons computed.",
	})
	leadsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gfe_leads_created_total",
		Help: "Leads created.",
	})
	aiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gfe_ai_requests_total",
		Help: "AI broker requests by kind and outcome.",
	}, []string{"kind", "outcome"})
)
