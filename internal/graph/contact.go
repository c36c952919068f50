package graph

import (
	"portfolio-api/internal/contact"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) contactQueryFields() graphql.Fields {
	return graphql.Fields{
		"get_contact": &graphql.Field{
			Type: contactType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.contacts.GetContactByID(p.Context, intArg(p.Args, "id"))
			},
		},
		"list_contact": &graphql.Field{
			Type: graphql.NewList(contactType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.contacts.GetAllContacts(p.Context)
			},
		},
	}
}

func (r *Resolver) contactMutationFields() graphql.Fields {
	return graphql.Fields{
		"create_contact": &graphql.Field{
			Type: contactType,
			Args: graphql.FieldConfigArgument{
				"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"subject": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"message": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := contact.CreateInput{
					Name:    stringArg(p.Args, "name"),
					Email:   stringArg(p.Args, "email"),
					Subject: stringArg(p.Args, "subject"),
					Message: stringArg(p.Args, "message"),
				}
				return r.contacts.CreateContact(p.Context, in)
			},
		},
		"update_contact": &graphql.Field{
			Type: contactType,
			Args: graphql.FieldConfigArgument{
				"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"name":    &graphql.ArgumentConfig{Type: graphql.String},
				"email":   &graphql.ArgumentConfig{Type: graphql.String},
				"subject": &graphql.ArgumentConfig{Type: graphql.String},
				"message": &graphql.ArgumentConfig{Type: graphql.String},
				"is_read": &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := contact.UpdateInput{
					Name:    optString(p.Args, "name"),
					Email:   optString(p.Args, "email"),
					Subject: optString(p.Args, "subject"),
					Message: optString(p.Args, "message"),
					IsRead:  optBool(p.Args, "is_read"),
				}
				return r.contacts.UpdateContact(p.Context, intArg(p.Args, "id"), in)
			},
		},
		"delete_contact": &graphql.Field{
			Type: deletePayloadType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.contacts.DeleteContact(p.Context, intArg(p.Args, "id")); err != nil {
					return nil, err
				}
				return deletePayload{Success: true}, nil
			},
		},
	}
}
