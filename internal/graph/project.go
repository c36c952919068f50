package graph

import (
	"portfolio-api/internal/project"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) projectQueryFields() graphql.Fields {
	return graphql.Fields{
		"get_project": &graphql.Field{
			Type: projectType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.projects.GetProjectByID(p.Context, intArg(p.Args, "id"))
			},
		},
		"list_project": &graphql.Field{
			Type: graphql.NewList(projectType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.projects.GetAllProjects(p.Context)
			},
		},
	}
}

func (r *Resolver) projectMutationFields() graphql.Fields {
	return graphql.Fields{
		"create_project": &graphql.Field{
			Type: projectType,
			Args: graphql.FieldConfigArgument{
				"title":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"start_data":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.DateTime)},
				"end_data":          &graphql.ArgumentConfig{Type: graphql.DateTime},
				"url":               &graphql.ArgumentConfig{Type: graphql.String},
				"repository":        &graphql.ArgumentConfig{Type: graphql.String},
				"technologies_used": &graphql.ArgumentConfig{Type: graphql.String},
				"file":              &graphql.ArgumentConfig{Type: graphql.String},
				"image":             &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := project.CreateInput{
					Title:            stringArg(p.Args, "title"),
					Description:      stringArg(p.Args, "description"),
					StartData:        timeArg(p.Args, "start_data"),
					EndData:          optTime(p.Args, "end_data"),
					URL:              optString(p.Args, "url"),
					Repository:       optString(p.Args, "repository"),
					TechnologiesUsed: optString(p.Args, "technologies_used"),
					File:             optString(p.Args, "file"),
					Image:            optString(p.Args, "image"),
				}
				return r.projects.CreateProject(p.Context, in)
			},
		},
		"update_project": &graphql.Field{
			Type: projectType,
			Args: graphql.FieldConfigArgument{
				"id":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"title":             &graphql.ArgumentConfig{Type: graphql.String},
				"description":       &graphql.ArgumentConfig{Type: graphql.String},
				"start_data":        &graphql.ArgumentConfig{Type: graphql.DateTime},
				"end_data":          &graphql.ArgumentConfig{Type: graphql.DateTime},
				"url":               &graphql.ArgumentConfig{Type: graphql.String},
				"repository":        &graphql.ArgumentConfig{Type: graphql.String},
				"technologies_used": &graphql.ArgumentConfig{Type: graphql.String},
				"file":              &graphql.ArgumentConfig{Type: graphql.String},
				"image":             &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := project.UpdateInput{
					Title:            optString(p.Args, "title"),
					Description:      optString(p.Args, "description"),
					StartData:        optTime(p.Args, "start_data"),
					EndData:          optTime(p.Args, "end_data"),
					URL:              optString(p.Args, "url"),
					Repository:       optString(p.Args, "repository"),
					TechnologiesUsed: optString(p.Args, "technologies_used"),
					File:             optString(p.Args, "file"),
					Image:            optString(p.Args, "image"),
				}
				return r.projects.UpdateProject(p.Context, intArg(p.Args, "id"), in)
			},
		},
		"delete_project": &graphql.Field{
			Type: deletePayloadType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.projects.DeleteProject(p.Context, intArg(p.Args, "id")); err != nil {
					return nil, err
				}
				return deletePayload{Success: true}, nil
			},
		},
	}
}
