package graph

import (
	"portfolio-api/internal/profile"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) meQueryFields() graphql.Fields {
	return graphql.Fields{
		"get_me": &graphql.Field{
			Type: meType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.profiles.GetProfileByID(p.Context, intArg(p.Args, "id"))
			},
		},
		"list_me": &graphql.Field{
			Type: graphql.NewList(meType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.profiles.GetAllProfiles(p.Context)
			},
		},
	}
}

func (r *Resolver) meMutationFields() graphql.Fields {
	return graphql.Fields{
		"create_me": &graphql.Field{
			Type: meType,
			Args: graphql.FieldConfigArgument{
				"first_name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"last_name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"phone":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"instagram":    &graphql.ArgumentConfig{Type: graphql.String},
				"github":       &graphql.ArgumentConfig{Type: graphql.String},
				"linkedin":     &graphql.ArgumentConfig{Type: graphql.String},
				"telegram":     &graphql.ArgumentConfig{Type: graphql.String},
				"education":    &graphql.ArgumentConfig{Type: graphql.String},
				"work_history": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := profile.CreateInput{
					FirstName:   stringArg(p.Args, "first_name"),
					LastName:    stringArg(p.Args, "last_name"),
					Email:       stringArg(p.Args, "email"),
					Phone:       stringArg(p.Args, "phone"),
					Instagram:   optString(p.Args, "instagram"),
					Github:      optString(p.Args, "github"),
					Linkedin:    optString(p.Args, "linkedin"),
					Telegram:    optString(p.Args, "telegram"),
					Education:   optString(p.Args, "education"),
					WorkHistory: optString(p.Args, "work_history"),
				}
				return r.profiles.CreateProfile(p.Context, in)
			},
		},
		"update_me": &graphql.Field{
			Type: meType,
			Args: graphql.FieldConfigArgument{
				"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"first_name":   &graphql.ArgumentConfig{Type: graphql.String},
				"last_name":    &graphql.ArgumentConfig{Type: graphql.String},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"phone":        &graphql.ArgumentConfig{Type: graphql.String},
				"instagram":    &graphql.ArgumentConfig{Type: graphql.String},
				"github":       &graphql.ArgumentConfig{Type: graphql.String},
				"linkedin":     &graphql.ArgumentConfig{Type: graphql.String},
				"telegram":     &graphql.ArgumentConfig{Type: graphql.String},
				"education":    &graphql.ArgumentConfig{Type: graphql.String},
				"work_history": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := profile.UpdateInput{
					FirstName:   optString(p.Args, "first_name"),
					LastName:    optString(p.Args, "last_name"),
					Email:       optString(p.Args, "email"),
					Phone:       optString(p.Args, "phone"),
					Instagram:   optString(p.Args, "instagram"),
					Github:      optString(p.Args, "github"),
					Linkedin:    optString(p.Args, "linkedin"),
					Telegram:    optString(p.Args, "telegram"),
					Education:   optString(p.Args, "education"),
					WorkHistory: optString(p.Args, "work_history"),
				}
				return r.profiles.UpdateProfile(p.Context, intArg(p.Args, "id"), in)
			},
		},
		"delete_me": &graphql.Field{
			Type: deletePayloadType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.profiles.DeleteProfile(p.Context, intArg(p.Args, "id")); err != nil {
					return nil, err
				}
				return deletePayload{Success: true}, nil
			},
		},
	}
}
