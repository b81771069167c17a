package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/persona-chat/internal/domain"
)

func (c *Client) GetAgent(ctx context.Context, id domain.AgentID) (domain.Agent, error) {
	var agent domain.Agent
	err := c.do(ctx, request{
		method:      http.MethodGet,
		path:        "/agents/" + segment(string(id)),
		description: "get agent",
	}, &agent)
	if err != nil {
		return domain.Agent{}, err
	}

	return agent, nil
}

func (c *Client) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	var agents []domain.Agent
	err := c.do(ctx, request{method: http.MethodGet, path: "/agents", description: "list agents"}, &agents)
	if err != nil {
		return nil, err
	}

	return agents, nil
}

func (c *Client) CreateAgent(ctx context.Context, metaID domain.AgentMetaID) (domain.AgentID, error) {
	form := url.Values{}
	form.Set("agent_metadata_id", string(metaID))

	var created struct {
		AgentID domain.AgentID `json:"agent_id"`
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/agents",
		form:        form,
		description: "create agent",
	}, &created)
	if err != nil {
		return "", err
	}

	return created.AgentID, nil
}

func (c *Client) DeleteAgent(ctx context.Context, id domain.AgentID) error {
	return c.do(ctx, request{
		method:      http.MethodDelete,
		path:        "/agents/" + segment(string(id)),
		description: "delete agent",
	}, nil)
}

func (c *Client) ListAgentMetas(ctx context.Context) ([]domain.AgentMetaSummary, error) {
	var metas []domain.AgentMetaSummary
	err := c.do(ctx, request{method: http.MethodGet, path: "/agent_metas", description: "list agent metas"}, &metas)
	if err != nil {
		return nil, err
	}

	return metas, nil
}

func (c *Client) CreateAgentMeta(ctx context.Context, meta domain.AgentMeta) (domain.AgentMetaID, error) {
	form := url.Values{}
	form.Set("name", meta.Name)
	form.Set("description", meta.Description)
	form.Set("character_design", meta.CharacterDesign)
	form.Set("response_requirement", meta.ResponseRequirement)
	form.Set("character_emotion_split", meta.CharacterEmotionSplit)
	form.Set("model", meta.Model)

	var created struct {
		AgentMetaID domain.AgentMetaID `json:"agent_meta_id"`
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/agent_metas",
		form:        form,
		description: "create agent meta",
	}, &created)
	if err != nil {
		return "", err
	}

	return created.AgentMetaID, nil
}
