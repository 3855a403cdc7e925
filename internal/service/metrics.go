package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ketoggler_recipes_created_total",
			Help: "Total number of recipes created",
		},
	)

	pipelineFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ketoggler_recipe_pipeline_failures_total",
			Help: "Recipe creation failures by pipeline step",
		},
		[]string{"step"},
	)

	droppedAllergens = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ketoggler_allergen_names_dropped_total",
			Help: "Allergen names ignored because they are not in the catalog",
		},
	)
)
