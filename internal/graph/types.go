package graph

import "github.com/graphql-go/graphql"

// Object types mirror the JSON shape of the entities; the default resolver
// picks struct fields up through their json tags.

var meType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Me",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"first_name":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"last_name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"phone":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"instagram":    &graphql.Field{Type: graphql.String},
		"github":       &graphql.Field{Type: graphql.String},
		"linkedin":     &graphql.Field{Type: graphql.String},
		"telegram":     &graphql.Field{Type: graphql.String},
		"education":    &graphql.Field{Type: graphql.String},
		"work_history": &graphql.Field{Type: graphql.String},
	},
})

var projectType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Project",
	Fields: graphql.Fields{
		"id":                &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"start_data":        &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"end_data":          &graphql.Field{Type: graphql.DateTime},
		"url":               &graphql.Field{Type: graphql.String},
		"repository":        &graphql.Field{Type: graphql.String},
		"technologies_used": &graphql.Field{Type: graphql.String},
		"file":              &graphql.Field{Type: graphql.String},
		"image":             &graphql.Field{Type: graphql.String},
		"created_at":        &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updated_at":        &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var skillType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Skill",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"category":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"percentage": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var pricingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Pricing",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"service":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"rate_per_hour":   &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"estimated_hours": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"total_cost":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var contactType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Contact",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"subject":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"message":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created_at": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"is_read":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

// deletePayloadType is shared by every delete mutation: success is always
// true, a missing id is an error instead of a false flag.
var deletePayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeletePayload",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

type deletePayload struct {
	Success bool `json:"success"`
}
