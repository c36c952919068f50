package graph_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"portfolio-api/internal/contact"
	"portfolio-api/internal/graph"
	"portfolio-api/internal/pricing"
	"portfolio-api/internal/profile"
	"portfolio-api/internal/project"
	"portfolio-api/internal/skill"
	"portfolio-api/internal/testdb"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSchema(t *testing.T) graphql.Schema {
	t.Helper()

	db := testdb.New(t,
		(*profile.Profile)(nil),
		(*project.Project)(nil),
		(*skill.Skill)(nil),
		(*pricing.Pricing)(nil),
		(*contact.Contact)(nil),
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	resolver := graph.NewResolver(
		profile.NewService(profile.NewRepository(db)),
		project.NewService(project.NewRepository(db)),
		skill.NewService(skill.NewRepository(db)),
		pricing.NewService(pricing.NewRepository(db)),
		contact.NewService(contact.NewRepository(db), nil, logger),
		logger,
	)

	schema, err := graph.NewSchema(resolver)
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema graphql.Schema, query string) map[string]interface{} {
	t.Helper()

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors, "unexpected errors for query %s", query)
	return result.Data.(map[string]interface{})
}

func execExpectError(t *testing.T, schema graphql.Schema, query string) string {
	t.Helper()

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
	require.NotEmpty(t, result.Errors, "expected errors for query %s", query)
	return result.Errors[0].Message
}

func TestMeLifecycle(t *testing.T) {
	schema := setupSchema(t)

	data := exec(t, schema, `mutation {
		create_me(first_name: "Marselle", last_name: "Naz", email: "marselle@example.com", phone: "+7 777 000 00 00", github: "https://github.com/marselle") {
			id first_name github education
		}
	}`)
	created := data["create_me"].(map[string]interface{})
	id := created["id"].(int)
	assert.Equal(t, "Marselle", created["first_name"])
	assert.Equal(t, "https://github.com/marselle", created["github"])
	assert.Nil(t, created["education"])

	// Only the supplied argument changes.
	data = exec(t, schema, fmt.Sprintf(`mutation {
		update_me(id: %d, phone: "+7 777 111 11 11") { id first_name phone github }
	}`, id))
	updated := data["update_me"].(map[string]interface{})
	assert.Equal(t, "+7 777 111 11 11", updated["phone"])
	assert.Equal(t, "Marselle", updated["first_name"])
	assert.Equal(t, "https://github.com/marselle", updated["github"])

	data = exec(t, schema, fmt.Sprintf(`mutation { delete_me(id: %d) { success } }`, id))
	assert.Equal(t, true, data["delete_me"].(map[string]interface{})["success"])

	msg := execExpectError(t, schema, fmt.Sprintf(`{ get_me(id: %d) { id } }`, id))
	assert.Contains(t, msg, "profile not found")
	assert.Contains(t, msg, fmt.Sprintf("%d", id))
}

func TestProjectListOrder(t *testing.T) {
	schema := setupSchema(t)

	exec(t, schema, `mutation {
		create_project(title: "First", description: "built first", start_data: "2024-01-01T00:00:00Z") { id }
	}`)
	data := exec(t, schema, `mutation {
		create_project(title: "Second", description: "built second", start_data: "2019-03-15T00:00:00Z") { id }
	}`)
	secondID := data["create_project"].(map[string]interface{})["id"].(int)

	data = exec(t, schema, `{ list_project { id title } }`)
	projects := data["list_project"].([]interface{})
	require.Len(t, projects, 2)
	newest := projects[0].(map[string]interface{})
	assert.Equal(t, secondID, newest["id"])
	assert.Equal(t, "Second", newest["title"])
}

func TestSkillValidationThroughSchema(t *testing.T) {
	schema := setupSchema(t)

	msg := execExpectError(t, schema, `mutation {
		create_skill(category: "astrology", name: "Horoscopes", percentage: 50) { id }
	}`)
	assert.Contains(t, msg, "invalid skill category")

	msg = execExpectError(t, schema, `mutation {
		create_skill(category: "programming", name: "Go", percentage: 101) { id }
	}`)
	assert.Contains(t, msg, "invalid input")

	data := exec(t, schema, `mutation {
		create_skill(category: "programming", name: "Go", percentage: 90) { id category percentage }
	}`)
	created := data["create_skill"].(map[string]interface{})
	assert.Equal(t, "programming", created["category"])
	assert.Equal(t, 90, created["percentage"])
}

func TestPricingTotalCostThroughSchema(t *testing.T) {
	schema := setupSchema(t)

	data := exec(t, schema, `mutation {
		create_pricing(service: "Backend development", description: "APIs", rate_per_hour: 50.0, estimated_hours: 3.5) {
			id total_cost
		}
	}`)
	created := data["create_pricing"].(map[string]interface{})
	id := created["id"].(int)
	assert.InDelta(t, 175.00, created["total_cost"].(float64), 0.001)

	data = exec(t, schema, fmt.Sprintf(`mutation {
		update_pricing(id: %d, rate_per_hour: 60.0) { total_cost estimated_hours }
	}`, id))
	updated := data["update_pricing"].(map[string]interface{})
	assert.InDelta(t, 210.00, updated["total_cost"].(float64), 0.001)
	assert.InDelta(t, 3.50, updated["estimated_hours"].(float64), 0.001)
}

func TestContactReadFlagThroughSchema(t *testing.T) {
	schema := setupSchema(t)

	data := exec(t, schema, `mutation {
		create_contact(name: "Jane Visitor", email: "jane@example.com", subject: "Inquiry", message: "Hello") {
			id is_read
		}
	}`)
	created := data["create_contact"].(map[string]interface{})
	id := created["id"].(int)
	assert.Equal(t, false, created["is_read"])

	data = exec(t, schema, fmt.Sprintf(`mutation {
		update_contact(id: %d, is_read: true) { is_read subject message }
	}`, id))
	updated := data["update_contact"].(map[string]interface{})
	assert.Equal(t, true, updated["is_read"])
	assert.Equal(t, "Inquiry", updated["subject"])
	assert.Equal(t, "Hello", updated["message"])
}

func TestDeleteMissingEntityIsError(t *testing.T) {
	schema := setupSchema(t)

	for _, q := range []string{
		`mutation { delete_project(id: 9999) { success } }`,
		`mutation { delete_skill(id: 9999) { success } }`,
		`mutation { delete_pricing(id: 9999) { success } }`,
		`mutation { delete_contact(id: 9999) { success } }`,
	} {
		msg := execExpectError(t, schema, q)
		assert.Contains(t, msg, "not found")
		assert.Contains(t, msg, "9999")
	}
}
