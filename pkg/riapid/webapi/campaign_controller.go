package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/riapid/shape"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
)

type CampaignController struct {
	campaignStor stor.CampaignStor
	cfg          *listq.Config
}

// campaignFields are the fields a client may set. The slug is derived from the name on
// create and never changes.
type campaignFields struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Story       *string `json:"story"`
}

func NewCampaignController(campaignStor stor.CampaignStor, maxPageSize int) *CampaignController {
	return &CampaignController{
		campaignStor: campaignStor,
		cfg:          WithMaxPageSize(campaignListConfig(), maxPageSize),
	}
}

func (c *CampaignController) ListCampaigns(ctx echo.Context) error {
	return listResponse(ctx, c.cfg, c.campaignStor.ListCampaigns, shape.Identity[rimodel.Campaign])
}

func (c *CampaignController) CreateCampaign(ctx echo.Context) error {
	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	var campaign rimodel.Campaign
	if err := patchBody[campaignFields](m, &campaign); err != nil {
		return err
	}

	created, err := c.campaignStor.CreateCampaign(&campaign)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *CampaignController) GetCampaign(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "campaign")
	if err != nil {
		return err
	}

	campaign, err := c.campaignStor.GetCampaignByID(id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, campaign)
}

func (c *CampaignController) UpdateCampaign(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "campaign")
	if err != nil {
		return err
	}

	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	campaign, err := c.campaignStor.ModifyCampaign(id, func(campaign *rimodel.Campaign) error {
		return patchBody[campaignFields](m, campaign)
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, campaign)
}

func (c *CampaignController) DeleteCampaign(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "campaign")
	if err != nil {
		return err
	}

	if err := c.campaignStor.DeleteCampaign(id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
