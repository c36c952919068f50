package graph

import (
	"portfolio-api/internal/pricing"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) pricingQueryFields() graphql.Fields {
	return graphql.Fields{
		"get_pricing": &graphql.Field{
			Type: pricingType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.pricings.GetPricingByID(p.Context, intArg(p.Args, "id"))
			},
		},
		"list_pricing": &graphql.Field{
			Type: graphql.NewList(pricingType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.pricings.GetAllPricings(p.Context)
			},
		},
	}
}

func (r *Resolver) pricingMutationFields() graphql.Fields {
	return graphql.Fields{
		"create_pricing": &graphql.Field{
			Type: pricingType,
			Args: graphql.FieldConfigArgument{
				"service":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"rate_per_hour":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				"estimated_hours": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				rate := floatArg(p.Args, "rate_per_hour")
				hours := floatArg(p.Args, "estimated_hours")
				in := pricing.CreateInput{
					Service:        stringArg(p.Args, "service"),
					Description:    stringArg(p.Args, "description"),
					RatePerHour:    &rate,
					EstimatedHours: &hours,
				}
				return r.pricings.CreatePricing(p.Context, in)
			},
		},
		"update_pricing": &graphql.Field{
			Type: pricingType,
			Args: graphql.FieldConfigArgument{
				"id":              &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"service":         &graphql.ArgumentConfig{Type: graphql.String},
				"description":     &graphql.ArgumentConfig{Type: graphql.String},
				"rate_per_hour":   &graphql.ArgumentConfig{Type: graphql.Float},
				"estimated_hours": &graphql.ArgumentConfig{Type: graphql.Float},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := pricing.UpdateInput{
					Service:        optString(p.Args, "service"),
					Description:    optString(p.Args, "description"),
					RatePerHour:    optFloat(p.Args, "rate_per_hour"),
					EstimatedHours: optFloat(p.Args, "estimated_hours"),
				}
				return r.pricings.UpdatePricing(p.Context, intArg(p.Args, "id"), in)
			},
		},
		"delete_pricing": &graphql.Field{
			Type: deletePayloadType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.pricings.DeletePricing(p.Context, intArg(p.Args, "id")); err != nil {
					return nil, err
				}
				return deletePayload{Success: true}, nil
			},
		},
	}
}
