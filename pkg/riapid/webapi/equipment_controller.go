package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/riapid/shape"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
	"github.com/rollinitiative/rollinit/pkg/rierr"
)

// assignmentKind describes one kind of catalog item a character can own: how to make an
// empty row and which fields a client may set on create and on update.
type assignmentKind struct {
	what   string
	new    func(characterID string) rimodel.Assignment
	create func(m map[string]any, a rimodel.Assignment) error
	update func(m map[string]any, a rimodel.Assignment) error
}

type armorAssignmentFields struct {
	ArmorID  *string `json:"armor_id"`
	Equipped *bool   `json:"equipped"`
}

type weaponAssignmentFields struct {
	WeaponID *string `json:"weapon_id"`
	Equipped *bool   `json:"equipped"`
}

type equippedField struct {
	Equipped *bool `json:"equipped"`
}

type gearAssignmentFields struct {
	AdventuringGearID *string `json:"adventuring_gear_id"`
	Length            *int    `json:"length"`
	Quantity          *int    `json:"quantity"`
}

type gearAmountFields struct {
	Length   *int `json:"length"`
	Quantity *int `json:"quantity"`
}

type toolAssignmentFields struct {
	ToolID *string `json:"tool_id"`
}

type featAssignmentFields struct {
	FeatID *string `json:"feat_id"`
}

type noFields struct{}

var assignmentKinds = map[string]assignmentKind{
	"armor": {
		what:   "armor assignment",
		new:    func(id string) rimodel.Assignment { return &rimodel.CharacterArmor{CharacterID: id} },
		create: func(m map[string]any, a rimodel.Assignment) error { return patchBody[armorAssignmentFields](m, a) },
		update: func(m map[string]any, a rimodel.Assignment) error { return patchBody[equippedField](m, a) },
	},
	"weapons": {
		what:   "weapon assignment",
		new:    func(id string) rimodel.Assignment { return &rimodel.CharacterWeapon{CharacterID: id} },
		create: func(m map[string]any, a rimodel.Assignment) error { return patchBody[weaponAssignmentFields](m, a) },
		update: func(m map[string]any, a rimodel.Assignment) error { return patchBody[equippedField](m, a) },
	},
	"adventuring-gear": {
		what: "adventuring gear assignment",
		new:  func(id string) rimodel.Assignment { return &rimodel.CharacterAdventuringGear{CharacterID: id} },
		create: func(m map[string]any, a rimodel.Assignment) error {
			if err := patchBody[gearAssignmentFields](m, a); err != nil {
				return err
			}

			// Without an amount the character carries one unit.
			g := a.(*rimodel.CharacterAdventuringGear)
			if g.Length == nil && g.Quantity == nil {
				one := 1
				g.Quantity = &one
			}

			return nil
		},
		update: func(m map[string]any, a rimodel.Assignment) error { return patchBody[gearAmountFields](m, a) },
	},
	"tools": {
		what:   "tool assignment",
		new:    func(id string) rimodel.Assignment { return &rimodel.CharacterTool{CharacterID: id} },
		create: func(m map[string]any, a rimodel.Assignment) error { return patchBody[toolAssignmentFields](m, a) },
		update: func(m map[string]any, a rimodel.Assignment) error { return patchBody[noFields](m, a) },
	},
}

var featKind = assignmentKind{
	what:   "feat assignment",
	new:    func(id string) rimodel.Assignment { return &rimodel.CharacterFeat{CharacterID: id} },
	create: func(m map[string]any, a rimodel.Assignment) error { return patchBody[featAssignmentFields](m, a) },
}

// EquipmentController manages what a character carries and the feats it has.
type EquipmentController struct {
	characterStor stor.CharacterStor
}

func NewEquipmentController(characterStor stor.CharacterStor) *EquipmentController {
	return &EquipmentController{characterStor: characterStor}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "character")
	if err != nil {
		return err
	}

	return c.equipmentResponse(ctx, http.StatusOK, id)
}

func (c *EquipmentController) AddEquipment(ctx echo.Context) error {
	kind, err := equipmentKind(ctx)
	if err != nil {
		return err
	}

	id, err := c.addAssignment(ctx, kind)
	if err != nil {
		return err
	}

	return c.equipmentResponse(ctx, http.StatusCreated, id)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	kind, err := equipmentKind(ctx)
	if err != nil {
		return err
	}

	characterID, err := idParam(ctx, "id", "character")
	if err != nil {
		return err
	}

	assignmentID, err := idParam(ctx, "assignment", kind.what)
	if err != nil {
		return err
	}

	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	a := kind.new(characterID)
	if err := c.characterStor.ModifyAssignment(characterID, assignmentID, a, func() error { return kind.update(m, a) }); err != nil {
		return err
	}

	return c.equipmentResponse(ctx, http.StatusOK, characterID)
}

func (c *EquipmentController) RemoveEquipment(ctx echo.Context) error {
	kind, err := equipmentKind(ctx)
	if err != nil {
		return err
	}

	return c.removeAssignment(ctx, kind)
}

func (c *EquipmentController) AddFeat(ctx echo.Context) error {
	id, err := c.addAssignment(ctx, featKind)
	if err != nil {
		return err
	}

	character, err := c.characterStor.GetCharacterByID(id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, shape.NewCharacterDetail(character))
}

func (c *EquipmentController) RemoveFeat(ctx echo.Context) error {
	return c.removeAssignment(ctx, featKind)
}

// addAssignment creates an assignment for the character in the path and returns the
// character's id.
func (c *EquipmentController) addAssignment(ctx echo.Context, kind assignmentKind) (string, error) {
	characterID, err := idParam(ctx, "id", "character")
	if err != nil {
		return "", err
	}

	m, err := readBody(ctx)
	if err != nil {
		return "", err
	}

	if _, err := c.characterStor.GetCharacterByID(characterID); err != nil {
		return "", err
	}

	a := kind.new(characterID)
	if err := kind.create(m, a); err != nil {
		return "", err
	}

	if err := c.characterStor.AddAssignment(a); err != nil {
		return "", err
	}

	return characterID, nil
}

func (c *EquipmentController) removeAssignment(ctx echo.Context, kind assignmentKind) error {
	characterID, err := idParam(ctx, "id", "character")
	if err != nil {
		return err
	}

	assignmentID, err := idParam(ctx, "assignment", kind.what)
	if err != nil {
		return err
	}

	if err := c.characterStor.RemoveAssignment(characterID, assignmentID, kind.new(characterID)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *EquipmentController) equipmentResponse(ctx echo.Context, status int, characterID string) error {
	character, err := c.characterStor.GetCharacterWithEquipment(characterID)
	if err != nil {
		return err
	}

	return ctx.JSON(status, shape.NewEquipment(character))
}

func equipmentKind(ctx echo.Context) (assignmentKind, error) {
	kind, ok := assignmentKinds[ctx.Param("kind")]
	if !ok {
		return assignmentKind{}, rierr.NotFoundf("unknown equipment kind %q", ctx.Param("kind"))
	}

	return kind, nil
}
