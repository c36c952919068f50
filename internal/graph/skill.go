package graph

import (
	"portfolio-api/internal/skill"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) skillQueryFields() graphql.Fields {
	return graphql.Fields{
		"get_skill": &graphql.Field{
			Type: skillType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.skills.GetSkillByID(p.Context, intArg(p.Args, "id"))
			},
		},
		"list_skill": &graphql.Field{
			Type: graphql.NewList(skillType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.skills.GetAllSkills(p.Context)
			},
		},
	}
}

func (r *Resolver) skillMutationFields() graphql.Fields {
	return graphql.Fields{
		"create_skill": &graphql.Field{
			Type: skillType,
			Args: graphql.FieldConfigArgument{
				"category":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"percentage": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := skill.CreateInput{
					Category:   skill.Category(stringArg(p.Args, "category")),
					Name:       stringArg(p.Args, "name"),
					Percentage: intArg(p.Args, "percentage"),
				}
				return r.skills.CreateSkill(p.Context, in)
			},
		},
		"update_skill": &graphql.Field{
			Type: skillType,
			Args: graphql.FieldConfigArgument{
				"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"category":   &graphql.ArgumentConfig{Type: graphql.String},
				"name":       &graphql.ArgumentConfig{Type: graphql.String},
				"percentage": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var category *skill.Category
				if s := optString(p.Args, "category"); s != nil {
					c := skill.Category(*s)
					category = &c
				}
				in := skill.UpdateInput{
					Category:   category,
					Name:       optString(p.Args, "name"),
					Percentage: optInt(p.Args, "percentage"),
				}
				return r.skills.UpdateSkill(p.Context, intArg(p.Args, "id"), in)
			},
		},
		"delete_skill": &graphql.Field{
			Type: deletePayloadType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.skills.DeleteSkill(p.Context, intArg(p.Args, "id")); err != nil {
					return nil, err
				}
				return deletePayload{Success: true}, nil
			},
		},
	}
}
