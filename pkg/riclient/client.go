// Package riclient is a small HTTP client for the riapid API, used by rictl.
package riclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/riapid/shape"
	"github.com/rollinitiative/rollinit/pkg/rierr"
	"github.com/rollinitiative/rollinit/pkg/rules"
)

const DefaultBaseURL = "http://localhost:1360"

type Client struct {
	c *resty.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{c: c}
}

// errorBody mirrors the body the server sends with every error status.
type errorBody struct {
	Detail string              `json:"detail"`
	Code   rierr.Code          `json:"code"`
	Errors map[string][]string `json:"errors"`
}

// ToErrorFromResponse turns an error response into a *rierr.Error. Bodies that can't be
// parsed are reported with the HTTP status.
func ToErrorFromResponse(resp *resty.Response) error {
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Code == "" {
		return rierr.Newf(codeForStatus(resp.StatusCode()), "(HTTP Status: %d) %s", resp.StatusCode(), resp.Status())
	}

	return &rierr.Error{Code: body.Code, Message: body.Detail, Fields: body.Errors}
}

func codeForStatus(status int) rierr.Code {
	switch status {
	case http.StatusBadRequest:
		return rierr.CodeInvalidArgument
	case http.StatusNotFound:
		return rierr.CodeNotFound
	case http.StatusConflict:
		return rierr.CodeConflict
	default:
		return rierr.CodeInternal
	}
}

func (c *Client) do(method, path string, body, result any) error {
	req := c.c.R()
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		return ToErrorFromResponse(resp)
	}

	return nil
}

func pageQuery(path string, page, pageSize int) string {
	q := ""
	if page > 0 {
		q = "?page=" + strconv.Itoa(page)
	}
	if pageSize > 0 {
		if q == "" {
			q = "?"
		} else {
			q += "&"
		}
		q += "page_size=" + strconv.Itoa(pageSize)
	}

	return path + q
}

func (c *Client) ListCharacters(req listq.Request, page, pageSize int) (*listq.Page[shape.CharacterListEntry], error) {
	var result listq.Page[shape.CharacterListEntry]
	if err := c.do(http.MethodPost, pageQuery("/api/character/list/", page, pageSize), req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetCharacter(id string) (*shape.CharacterDetail, error) {
	var result shape.CharacterDetail
	if err := c.do(http.MethodGet, "/api/character/"+id+"/", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// LevelUp raises the character one level. When maxHPIncrease is nil the server rolls the
// class hit die.
func (c *Client) LevelUp(id string, maxHPIncrease *int) (*shape.CharacterDetail, error) {
	body := map[string]any{}
	if maxHPIncrease != nil {
		body["max_hp_increase"] = *maxHPIncrease
	}

	var result shape.CharacterDetail
	if err := c.do(http.MethodPost, "/api/character/"+id+"/level-up/", body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetEquipment(id string) (*shape.Equipment, error) {
	var result shape.Equipment
	if err := c.do(http.MethodGet, "/api/character/"+id+"/equipment/", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// HealthAdjustment holds hit point deltas. See the POST health endpoint.
type HealthAdjustment struct {
	CurrentHP              int  `json:"current_hp,omitempty"`
	MaxHP                  int  `json:"max_hp,omitempty"`
	AddConstitutionToMaxHP bool `json:"add_constitution_to_max_hp,omitempty"`
	TemporaryHP            int  `json:"temporary_hp,omitempty"`
}

func (c *Client) GetHealth(id string) (*shape.Health, error) {
	var result shape.Health
	if err := c.do(http.MethodGet, "/api/character/"+id+"/health/", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) AdjustHealth(id string, adj HealthAdjustment) (*shape.Health, error) {
	var result shape.Health
	if err := c.do(http.MethodPost, "/api/character/"+id+"/health/", adj, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) Roll(req rules.RollRequest) (*rules.RollResult, error) {
	var result rules.RollResult
	if err := c.do(http.MethodPost, "/api/dice/roll/", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
