// Package riapid assembles the API server: middleware, error handling and routes.
package riapid

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rollinitiative/rollinit/pkg/riapid/shape"
	"github.com/rollinitiative/rollinit/pkg/riapid/webapi"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
	"github.com/rollinitiative/rollinit/pkg/rules"
)

type RouteOpts struct {
	Stors *stor.Stors

	// Roller used for dice endpoints, level ups and monster hit points. Defaults to
	// rules.DefaultRoller.
	Roller dice.Roller

	// Cap on page_size for list endpoints, 0 for the default.
	MaxPageSize int

	// Log every request.
	LogRequests bool
}

// NewServer returns an echo instance with the middleware, error handler and all routes
// installed.
func NewServer(opts RouteOpts) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = webapi.HTTPErrorHandler
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.Recover())
	if opts.LogRequests {
		e.Use(webapi.RequestLogger())
	}

	SetupRoutes(e, opts)

	return e
}

func SetupRoutes(e *echo.Echo, opts RouteOpts) {
	roller := opts.Roller
	if roller == nil {
		roller = rules.DefaultRoller
	}

	s := opts.Stors
	g := e.Group("/api")

	campaignController := webapi.NewCampaignController(s.CampaignStor, opts.MaxPageSize)
	g.POST("/campaign/list/", campaignController.ListCampaigns)
	g.POST("/campaign/", campaignController.CreateCampaign)
	g.GET("/campaign/:id/", campaignController.GetCampaign)
	g.PATCH("/campaign/:id/", campaignController.UpdateCampaign)
	g.DELETE("/campaign/:id/", campaignController.DeleteCampaign)

	setupCharacterRoutes(g, s, roller, opts.MaxPageSize)
	setupEquipmentRoutes(g, s, opts.MaxPageSize)

	featController := webapi.NewCatalogController(s.FeatStor, webapi.WithMaxPageSize(webapi.FeatListConfig(), opts.MaxPageSize), "feat",
		shape.Identity[rimodel.Feat], shape.Identity[rimodel.Feat])
	g.POST("/feat/list/", featController.List)
	g.GET("/feat/:id/", featController.Get)

	setupMonsterRoutes(g, s, roller, opts.MaxPageSize)

	diceController := webapi.NewDiceController(roller)
	g.POST("/dice/roll/", diceController.Roll)
	g.POST("/dice/roll-multiple/", diceController.RollMultiple)
}

func setupCharacterRoutes(g *echo.Group, s *stor.Stors, roller dice.Roller, maxPageSize int) {
	c := g.Group("/character")

	classController := webapi.NewCatalogController(s.ClassStor, webapi.WithMaxPageSize(webapi.ClassListConfig(), maxPageSize), "character class",
		shape.NewClassListEntry, shape.NewClassDetail)
	c.POST("/class/list/", classController.List)
	c.GET("/class/:id/", classController.Get)

	raceController := webapi.NewCatalogController(s.RaceStor, webapi.WithMaxPageSize(webapi.RaceListConfig(), maxPageSize), "race",
		shape.Identity[rimodel.CharacterRace], shape.Identity[rimodel.CharacterRace])
	c.POST("/race/list/", raceController.List)
	c.GET("/race/:id/", raceController.Get)

	characterController := webapi.NewCharacterController(s.CharacterStor, roller, maxPageSize)
	c.POST("/list/", characterController.ListCharacters)
	c.POST("/", characterController.CreateCharacter)
	c.GET("/:id/", characterController.GetCharacter)
	c.PATCH("/:id/", characterController.UpdateCharacter)
	c.DELETE("/:id/", characterController.DeleteCharacter)
	c.POST("/:id/level-up/", characterController.LevelUp)

	equipmentController := webapi.NewEquipmentController(s.CharacterStor)
	c.GET("/:id/equipment/", equipmentController.GetEquipment)
	c.POST("/:id/equipment/:kind/", equipmentController.AddEquipment)
	c.PATCH("/:id/equipment/:kind/:assignment/", equipmentController.UpdateEquipment)
	c.DELETE("/:id/equipment/:kind/:assignment/", equipmentController.RemoveEquipment)
	c.POST("/:id/feats/", equipmentController.AddFeat)
	c.DELETE("/:id/feats/:assignment/", equipmentController.RemoveFeat)

	healthController := webapi.NewCharacterHealthController(s.CharacterStor)
	setupHealthRoutes(c, healthController)
}

func setupEquipmentRoutes(g *echo.Group, s *stor.Stors, maxPageSize int) {
	eq := g.Group("/equipment")

	armorController := webapi.NewCatalogController(s.ArmorStor, webapi.WithMaxPageSize(webapi.ArmorListConfig(), maxPageSize), "armor",
		shape.NewArmor, shape.NewArmor)
	eq.POST("/armor/list/", armorController.List)
	eq.GET("/armor/:id/", armorController.Get)

	weaponController := webapi.NewCatalogController(s.WeaponStor, webapi.WithMaxPageSize(webapi.WeaponListConfig(), maxPageSize), "weapon",
		shape.NewWeapon, shape.NewWeapon)
	eq.POST("/weapon/list/", weaponController.List)
	eq.GET("/weapon/:id/", weaponController.Get)

	gearController := webapi.NewCatalogController(s.AdventuringGearStor, webapi.WithMaxPageSize(webapi.AdventuringGearListConfig(), maxPageSize),
		"adventuring gear", shape.Identity[rimodel.AdventuringGear], shape.Identity[rimodel.AdventuringGear])
	eq.POST("/adventuring-gear/list/", gearController.List)
	eq.GET("/adventuring-gear/:id/", gearController.Get)

	packController := webapi.NewCatalogController(s.EquipmentPackStor, webapi.WithMaxPageSize(webapi.EquipmentPackListConfig(), maxPageSize),
		"equipment pack", shape.NewEquipmentPackListEntry, shape.NewEquipmentPackDetail)
	eq.POST("/equipment-pack/list/", packController.List)
	eq.GET("/equipment-pack/:id/", packController.Get)

	toolController := webapi.NewCatalogController(s.ToolStor, webapi.WithMaxPageSize(webapi.ToolListConfig(), maxPageSize), "tool",
		shape.NewTool, shape.NewTool)
	eq.POST("/tool/list/", toolController.List)
	eq.GET("/tool/:id/", toolController.Get)
}

func setupMonsterRoutes(g *echo.Group, s *stor.Stors, roller dice.Roller, maxPageSize int) {
	m := g.Group("/monster")

	typeController := webapi.NewCatalogController(s.MonsterTypeStor, webapi.WithMaxPageSize(webapi.MonsterTypeListConfig(), maxPageSize),
		"monster type", shape.Identity[rimodel.MonsterType], shape.Identity[rimodel.MonsterType])
	m.POST("/type/list/", typeController.List)
	m.GET("/type/:id/", typeController.Get)

	monsterController := webapi.NewMonsterController(s.MonsterStor, s.MonsterTypeStor, roller, maxPageSize)
	m.POST("/list/", monsterController.ListMonsters)
	m.POST("/", monsterController.CreateMonster)
	m.GET("/:id/", monsterController.GetMonster)
	m.PATCH("/:id/", monsterController.UpdateMonster)
	m.DELETE("/:id/", monsterController.DeleteMonster)

	setupHealthRoutes(m, webapi.NewMonsterHealthController(s.MonsterStor))
}

func setupHealthRoutes(g *echo.Group, h *webapi.HealthController) {
	g.GET("/:id/health/", h.GetHealth)
	g.PUT("/:id/health/", h.ReplaceHealth)
	g.PATCH("/:id/health/", h.UpdateHealth)
	g.POST("/:id/health/", h.AdjustHealth)
}
