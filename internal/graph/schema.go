package graph

import (
	"log/slog"

	"portfolio-api/internal/contact"
	"portfolio-api/internal/pricing"
	"portfolio-api/internal/profile"
	"portfolio-api/internal/project"
	"portfolio-api/internal/skill"

	"github.com/graphql-go/graphql"
)

// Resolver holds the services every query and mutation field dispatches to.
type Resolver struct {
	profiles profile.Service
	projects project.Service
	skills   skill.Service
	pricings pricing.Service
	contacts contact.Service
	logger   *slog.Logger
}

func NewResolver(
	profiles profile.Service,
	projects project.Service,
	skills skill.Service,
	pricings pricing.Service,
	contacts contact.Service,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		profiles: profiles,
		projects: projects,
		skills:   skills,
		pricings: pricings,
		contacts: contacts,
		logger:   logger,
	}
}

// NewSchema assembles the full schema: five get_*/list_* query pairs and
// fifteen create_*/update_*/delete_* mutations.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryFields := graphql.Fields{}
	mutationFields := graphql.Fields{}

	for _, fields := range []graphql.Fields{
		r.meQueryFields(),
		r.projectQueryFields(),
		r.skillQueryFields(),
		r.pricingQueryFields(),
		r.contactQueryFields(),
	} {
		for name, field := range fields {
			queryFields[name] = field
		}
	}

	for _, fields := range []graphql.Fields{
		r.meMutationFields(),
		r.projectMutationFields(),
		r.skillMutationFields(),
		r.pricingMutationFields(),
		r.contactMutationFields(),
	} {
		for name, field := range fields {
			mutationFields[name] = field
		}
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: queryFields,
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: mutationFields,
		}),
	})
}
