package riapid_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/riapid"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
	"github.com/rollinitiative/rollinit/pkg/tutil"
)

type apiTestCase struct {
	t      *testing.T
	db     *gorm.DB
	e      *echo.Echo
	roller *tutil.ScriptedRoller
}

func newAPITestCase(t *testing.T) *apiTestCase {
	db := tutil.NewTestDB(t)
	roller := tutil.NewScriptedRoller()
	e := riapid.NewServer(riapid.RouteOpts{Stors: stor.NewGormStors(db), Roller: roller})

	return &apiTestCase{t: t, db: db, e: e, roller: roller}
}

func (tc *apiTestCase) do(method, target string, body any) *httptest.ResponseRecorder {
	tc.t.Helper()

	var r *bytes.Reader
	switch b := body.(type) {
	case nil:
		r = bytes.NewReader(nil)
	case string:
		r = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(tc.t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	tc.e.ServeHTTP(rec, req)

	return rec
}

// call performs the request, checks the status and decodes the response body.
func (tc *apiTestCase) call(method, target string, body any, status int) map[string]any {
	tc.t.Helper()

	rec := tc.do(method, target, body)
	require.Equal(tc.t, status, rec.Code, rec.Body.String())

	if rec.Body.Len() == 0 {
		return nil
	}

	var out map[string]any
	require.NoError(tc.t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func (tc *apiTestCase) idOf(model any, name string) string {
	tc.t.Helper()

	var row struct{ ID string }
	require.NoError(tc.t, tc.db.Model(model).Select("id").Where("name = ?", name).Take(&row).Error)

	return row.ID
}

func (tc *apiTestCase) createFighter(extra map[string]any) map[string]any {
	tc.t.Helper()

	body := map[string]any{
		"first_name":         "Bruenor",
		"last_name":          "Battlehammer",
		"age":                150,
		"race_id":            tc.idOf(&rimodel.CharacterRace{}, "Dwarf"),
		"character_class_id": tc.idOf(&rimodel.CharacterClass{}, "Fighter"),
		"max_hp":             12,
		"armor_class":        16,
		"strength":           16,
		"dexterity":          12,
		"constitution":       14,
		"intelligence":       10,
		"wisdom":             11,
		"charisma":           8,
	}
	for k, v := range extra {
		body[k] = v
	}

	return tc.call(http.MethodPost, "/api/character/", body, http.StatusCreated)
}

func names(page map[string]any) []string {
	var out []string
	for _, r := range page["results"].([]any) {
		out = append(out, r.(map[string]any)["name"].(string))
	}

	return out
}

func TestClassListPagination(t *testing.T) {
	tc := newAPITestCase(t)

	page := tc.call(http.MethodPost, "/api/character/class/list/", nil, http.StatusOK)
	assert.EqualValues(t, 4, page["count"])
	assert.Equal(t, []string{"Cleric", "Fighter", "Rogue", "Wizard"}, names(page))
	assert.NotContains(t, page, "next")
	assert.NotContains(t, page, "previous")

	page = tc.call(http.MethodPost, "/api/character/class/list/?page_size=2", nil, http.StatusOK)
	assert.EqualValues(t, 4, page["count"])
	assert.Equal(t, []string{"Cleric", "Fighter"}, names(page))
	require.Contains(t, page, "next")

	page = tc.call(http.MethodPost, "/api/character/class/list/"+page["next"].(string), nil, http.StatusOK)
	assert.Equal(t, []string{"Rogue", "Wizard"}, names(page))
	assert.NotContains(t, page, "next")
	require.Contains(t, page, "previous")

	page = tc.call(http.MethodPost, "/api/character/class/list/"+page["previous"].(string), nil, http.StatusOK)
	assert.Equal(t, []string{"Cleric", "Fighter"}, names(page))
}

func TestListQueries(t *testing.T) {
	tc := newAPITestCase(t)

	t.Run("SortDescending", func(t *testing.T) {
		page := tc.call(http.MethodPost, "/api/character/class/list/", map[string]any{"sort": map[string]bool{"hit_die": false}}, http.StatusOK)
		assert.Equal(t, "Fighter", names(page)[0])
		assert.Equal(t, "Wizard", names(page)[3])
	})

	t.Run("TwoSortFieldsRejected", func(t *testing.T) {
		body := tc.call(http.MethodPost, "/api/character/class/list/",
			map[string]any{"sort": map[string]bool{"name": true, "hit_die": false}}, http.StatusBadRequest)
		assert.Equal(t, "INVALID_ARGUMENT", body["code"])
		assert.Contains(t, body["errors"], "sort")
	})

	t.Run("Search", func(t *testing.T) {
		page := tc.call(http.MethodPost, "/api/equipment/armor/list/", map[string]any{"search": "chain"}, http.StatusOK)
		assert.Equal(t, []string{"Chain Mail", "Chain Shirt"}, names(page))
	})

	t.Run("FilterWithOptions", func(t *testing.T) {
		page := tc.call(http.MethodPost, "/api/equipment/armor/list/",
			map[string]any{"filter": map[string]any{"armor_type": []string{"SHIELD", "HEAVY"}}}, http.StatusOK)
		assert.Equal(t, []string{"Chain Mail", "Plate", "Shield"}, names(page))
		assert.Contains(t, page["filter_options"], "armor_type")
	})

	t.Run("UnknownFilterValue", func(t *testing.T) {
		tc.call(http.MethodPost, "/api/equipment/armor/list/",
			map[string]any{"filter": map[string]any{"armor_type": []string{"CARDBOARD"}}}, http.StatusBadRequest)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		body := tc.call(http.MethodPost, "/api/feat/list/", map[string]any{"order": "name"}, http.StatusBadRequest)
		assert.Contains(t, body["errors"], "order")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		tc.call(http.MethodPost, "/api/feat/list/", "{not json", http.StatusBadRequest)
	})
}

func TestCatalogDetail(t *testing.T) {
	tc := newAPITestCase(t)

	rogue := tc.call(http.MethodGet, "/api/character/class/"+tc.idOf(&rimodel.CharacterClass{}, "Rogue")+"/", nil, http.StatusOK)
	assert.Len(t, rogue["armor_proficiencies"], 2)
	assert.Len(t, rogue["features"], 2)

	pack := tc.call(http.MethodGet, "/api/equipment/equipment-pack/"+tc.idOf(&rimodel.EquipmentPack{}, "Scholar's Pack")+"/", nil, http.StatusOK)
	assert.Len(t, pack["gear"], 4)

	sword := tc.call(http.MethodGet, "/api/equipment/weapon/"+tc.idOf(&rimodel.Weapon{}, "Longsword")+"/", nil, http.StatusOK)
	assert.Equal(t, "1d8", sword["damage"])
	assert.Equal(t, "Martial Melee Weapon", sword["weapon_type_display"])

	body := tc.call(http.MethodGet, "/api/feat/not-a-uuid/", nil, http.StatusNotFound)
	assert.Equal(t, "feat not found", body["detail"])

	tc.call(http.MethodGet, "/api/monster/type/00000000-0000-0000-0000-000000000000/", nil, http.StatusNotFound)
}

func TestCharacterLifecycle(t *testing.T) {
	tc := newAPITestCase(t)

	created := tc.createFighter(map[string]any{"languages": []string{"Common", "Dwarvish"}})
	id := created["id"].(string)
	assert.Equal(t, "Bruenor Battlehammer", created["name"])
	assert.EqualValues(t, 1, created["level"])
	assert.EqualValues(t, 12, created["current_hp"])
	assert.Equal(t, "Dwarf", created["race"].(map[string]any)["name"])
	assert.EqualValues(t, 2, created["ability_modifiers"].(map[string]any)["CONSTITUTION"])

	got := tc.call(http.MethodGet, "/api/character/"+id+"/", nil, http.StatusOK)
	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, []any{"Common", "Dwarvish"}, got["languages"])

	patched := tc.call(http.MethodPatch, "/api/character/"+id+"/", map[string]any{"title": "King", "age": 151}, http.StatusOK)
	assert.Equal(t, "King Bruenor Battlehammer", patched["name"])
	assert.EqualValues(t, 151, patched["age"])
	assert.EqualValues(t, 16, patched["strength"])

	body := tc.call(http.MethodPatch, "/api/character/"+id+"/", map[string]any{"id": "x"}, http.StatusBadRequest)
	assert.Contains(t, body["errors"], "id")

	page := tc.call(http.MethodPost, "/api/character/list/", map[string]any{"search": "dwarf"}, http.StatusOK)
	assert.EqualValues(t, 1, page["count"])

	tc.call(http.MethodDelete, "/api/character/"+id+"/", nil, http.StatusNoContent)
	tc.call(http.MethodGet, "/api/character/"+id+"/", nil, http.StatusNotFound)
	tc.call(http.MethodDelete, "/api/character/"+id+"/", nil, http.StatusNotFound)
}

func TestCreateCharacterValidation(t *testing.T) {
	tc := newAPITestCase(t)

	t.Run("MissingFields", func(t *testing.T) {
		body := tc.call(http.MethodPost, "/api/character/", map[string]any{"first_name": "Nobody"}, http.StatusBadRequest)
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs, "race_id")
		assert.Contains(t, errs, "strength")
	})

	t.Run("UnknownRace", func(t *testing.T) {
		rec := tc.do(http.MethodPost, "/api/character/", map[string]any{
			"first_name":         "Nobody",
			"race_id":            "00000000-0000-0000-0000-000000000000",
			"character_class_id": tc.idOf(&rimodel.CharacterClass{}, "Fighter"),
			"age":                30,
			"max_hp":             10,
			"armor_class":        12,
			"strength":           10,
			"dexterity":          10,
			"constitution":       10,
			"intelligence":       10,
			"wisdom":             10,
			"charisma":           10,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("AgeHitPointsAndArmorClassRequired", func(t *testing.T) {
		body := tc.call(http.MethodPost, "/api/character/", map[string]any{
			"first_name":         "Nobody",
			"race_id":            tc.idOf(&rimodel.CharacterRace{}, "Dwarf"),
			"character_class_id": tc.idOf(&rimodel.CharacterClass{}, "Fighter"),
			"strength":           10,
			"dexterity":          10,
			"constitution":       10,
			"intelligence":       10,
			"wisdom":             10,
			"charisma":           10,
		}, http.StatusBadRequest)

		errs := body["errors"].(map[string]any)
		for _, field := range []string{"age", "max_hp", "armor_class"} {
			assert.Equal(t, []any{"This field is required."}, errs[field], field)
		}

		var count int64
		require.NoError(t, tc.db.Model(&rimodel.Character{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("ArmorClassNull", func(t *testing.T) {
		body := tc.call(http.MethodPost, "/api/character/", map[string]any{
			"first_name":  "Nobody",
			"age":         20,
			"max_hp":      8,
			"armor_class": nil,
		}, http.StatusBadRequest)
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs, "armor_class")
		assert.Contains(t, errs, "race_id")
		assert.NotContains(t, errs, "age")
	})

	t.Run("WrongType", func(t *testing.T) {
		body := tc.call(http.MethodPost, "/api/character/", map[string]any{"age": "old"}, http.StatusBadRequest)
		assert.Contains(t, body["errors"], "age")
	})
}

func TestLevelUp(t *testing.T) {
	tc := newAPITestCase(t)
	id := tc.createFighter(nil)["id"].(string)

	t.Run("RollsHitDie", func(t *testing.T) {
		tc.roller.Queue(7)
		c := tc.call(http.MethodPost, "/api/character/"+id+"/level-up/", nil, http.StatusOK)
		assert.EqualValues(t, 2, c["level"])
		assert.EqualValues(t, 21, c["max_hp"])
		assert.EqualValues(t, 21, c["current_hp"])
	})

	t.Run("GivenIncrease", func(t *testing.T) {
		c := tc.call(http.MethodPost, "/api/character/"+id+"/level-up/", map[string]any{"max_hp_increase": 4}, http.StatusOK)
		assert.EqualValues(t, 3, c["level"])
		assert.EqualValues(t, 27, c["max_hp"])
	})
}

func TestCharacterHealth(t *testing.T) {
	tc := newAPITestCase(t)
	id := tc.createFighter(map[string]any{"max_hp": 20, "current_hp": 15})["id"].(string)
	path := "/api/character/" + id + "/health/"

	h := tc.call(http.MethodGet, path, nil, http.StatusOK)
	assert.Equal(t, map[string]any{"max_hp": 20.0, "current_hp": 15.0, "temporary_hp": 0.0}, h)

	t.Run("AboveMaxRejected", func(t *testing.T) {
		body := tc.call(http.MethodPatch, path, map[string]any{"current_hp": 21}, http.StatusBadRequest)
		assert.Equal(t, []any{"Health cannot exceed max health."}, body["errors"].(map[string]any)["current_hp"])
	})

	t.Run("AdjustRescalesCurrent", func(t *testing.T) {
		h := tc.call(http.MethodPost, path, map[string]any{"max_hp": 13, "add_constitution_to_max_hp": true}, http.StatusOK)
		assert.EqualValues(t, 35, h["max_hp"])
		assert.EqualValues(t, 27, h["current_hp"])
	})

	t.Run("DamageFloorsAtZero", func(t *testing.T) {
		h := tc.call(http.MethodPost, path, map[string]any{"current_hp": -100, "temporary_hp": 5}, http.StatusOK)
		assert.EqualValues(t, 0, h["current_hp"])
		assert.EqualValues(t, 5, h["temporary_hp"])
	})

	t.Run("Replace", func(t *testing.T) {
		h := tc.call(http.MethodPut, path, map[string]any{"max_hp": 30, "current_hp": 30}, http.StatusOK)
		assert.EqualValues(t, 30, h["current_hp"])
		assert.EqualValues(t, 0, h["temporary_hp"])

		body := tc.call(http.MethodPut, path, map[string]any{"max_hp": 30}, http.StatusBadRequest)
		assert.Contains(t, body["errors"], "current_hp")
	})
}

func TestEquipment(t *testing.T) {
	tc := newAPITestCase(t)
	id := tc.createFighter(nil)["id"].(string)
	path := "/api/character/" + id + "/equipment/"

	tc.call(http.MethodPost, path+"armor/", map[string]any{"armor_id": tc.idOf(&rimodel.Armor{}, "Chain Mail"), "equipped": true}, http.StatusCreated)
	tc.call(http.MethodPost, path+"weapons/", map[string]any{"weapon_id": tc.idOf(&rimodel.Weapon{}, "Longsword")}, http.StatusCreated)
	tc.call(http.MethodPost, path+"adventuring-gear/", map[string]any{"adventuring_gear_id": tc.idOf(&rimodel.AdventuringGear{}, "Hempen Rope"), "length": 25}, http.StatusCreated)
	e := tc.call(http.MethodPost, path+"adventuring-gear/", map[string]any{"adventuring_gear_id": tc.idOf(&rimodel.AdventuringGear{}, "Torch")}, http.StatusCreated)

	// 55 chain mail, 3 longsword, 5 for half the rope and one torch.
	assert.Equal(t, "64.00", e["total_weight"])
	gear := e["adventuring_gear"].([]any)
	require.Len(t, gear, 2)

	var torch map[string]any
	for _, g := range gear {
		if g.(map[string]any)["name"] == "Torch" {
			torch = g.(map[string]any)
		}
	}
	require.NotNil(t, torch)
	assert.EqualValues(t, 1, torch["quantity"])

	t.Run("Update", func(t *testing.T) {
		e := tc.call(http.MethodPatch, path+"adventuring-gear/"+torch["assignment_id"].(string)+"/", map[string]any{"quantity": 4}, http.StatusOK)
		assert.Equal(t, "67.00", e["total_weight"])

		tc.call(http.MethodPatch, path+"adventuring-gear/"+torch["assignment_id"].(string)+"/",
			map[string]any{"adventuring_gear_id": tc.idOf(&rimodel.AdventuringGear{}, "Book")}, http.StatusBadRequest)
	})

	t.Run("Remove", func(t *testing.T) {
		tc.call(http.MethodDelete, path+"adventuring-gear/"+torch["assignment_id"].(string)+"/", nil, http.StatusNoContent)
		e := tc.call(http.MethodGet, path, nil, http.StatusOK)
		assert.Len(t, e["adventuring_gear"], 1)
		assert.Equal(t, "63.00", e["total_weight"])
	})

	t.Run("UnknownKind", func(t *testing.T) {
		tc.call(http.MethodPost, path+"spells/", map[string]any{}, http.StatusNotFound)
	})

	t.Run("UnknownCharacter", func(t *testing.T) {
		tc.call(http.MethodPost, "/api/character/00000000-0000-0000-0000-000000000000/equipment/weapons/",
			map[string]any{"weapon_id": tc.idOf(&rimodel.Weapon{}, "Club")}, http.StatusNotFound)
	})

	t.Run("Feats", func(t *testing.T) {
		c := tc.call(http.MethodPost, "/api/character/"+id+"/feats/", map[string]any{"feat_id": tc.idOf(&rimodel.Feat{}, "Alert")}, http.StatusCreated)
		feats := c["feats"].([]any)
		require.Len(t, feats, 1)
		feat := feats[0].(map[string]any)
		assert.Equal(t, "Alert", feat["name"])

		tc.call(http.MethodDelete, "/api/character/"+id+"/feats/"+feat["assignment_id"].(string)+"/", nil, http.StatusNoContent)
		c = tc.call(http.MethodGet, "/api/character/"+id+"/", nil, http.StatusOK)
		assert.Empty(t, c["feats"])
	})
}

func TestMonsters(t *testing.T) {
	tc := newAPITestCase(t)
	goblinType := tc.idOf(&rimodel.MonsterType{}, "Goblin")

	t.Run("DefaultsFromType", func(t *testing.T) {
		tc.roller.Queue(3, 4)
		m := tc.call(http.MethodPost, "/api/monster/", map[string]any{"monster_type_id": goblinType, "first_name": "Snig"}, http.StatusCreated)
		assert.EqualValues(t, 7, m["max_hp"])
		assert.EqualValues(t, 7, m["current_hp"])
		assert.EqualValues(t, 15, m["armor_class"])
		assert.EqualValues(t, 14, m["dexterity"])
		assert.Equal(t, "Goblin", m["monster_type"].(map[string]any)["name"])

		id := m["id"].(string)
		h := tc.call(http.MethodPost, "/api/monster/"+id+"/health/", map[string]any{"current_hp": -5}, http.StatusOK)
		assert.EqualValues(t, 2, h["current_hp"])

		m = tc.call(http.MethodPatch, "/api/monster/"+id+"/", map[string]any{"last_name": "the Sneaky"}, http.StatusOK)
		assert.Equal(t, "Snig the Sneaky", m["name"])

		page := tc.call(http.MethodPost, "/api/monster/list/", map[string]any{"filter": map[string]any{"monster_type": []string{goblinType}}}, http.StatusOK)
		assert.EqualValues(t, 1, page["count"])

		tc.call(http.MethodDelete, "/api/monster/"+id+"/", nil, http.StatusNoContent)
	})

	t.Run("GivenValuesWin", func(t *testing.T) {
		m := tc.call(http.MethodPost, "/api/monster/", map[string]any{
			"monster_type_id": goblinType, "first_name": "Boss", "max_hp": 20, "current_hp": 11, "strength": 12,
		}, http.StatusCreated)
		assert.EqualValues(t, 20, m["max_hp"])
		assert.EqualValues(t, 11, m["current_hp"])
		assert.EqualValues(t, 12, m["strength"])
	})

	t.Run("TypeRequired", func(t *testing.T) {
		body := tc.call(http.MethodPost, "/api/monster/", map[string]any{"first_name": "Nobody"}, http.StatusBadRequest)
		assert.Contains(t, body["errors"], "monster_type_id")

		body = tc.call(http.MethodPost, "/api/monster/",
			map[string]any{"first_name": "Nobody", "monster_type_id": "00000000-0000-0000-0000-000000000000"}, http.StatusBadRequest)
		assert.Contains(t, body["errors"], "monster_type_id")
	})
}

func TestCampaigns(t *testing.T) {
	tc := newAPITestCase(t)

	first := tc.call(http.MethodPost, "/api/campaign/", map[string]any{"name": "Tomb of Annihilation"}, http.StatusCreated)
	second := tc.call(http.MethodPost, "/api/campaign/", map[string]any{"name": "Tomb of Annihilation"}, http.StatusCreated)
	assert.Equal(t, "tomb-of-annihilation", first["slug"])
	assert.Equal(t, "tomb-of-annihilation-1", second["slug"])

	id := first["id"].(string)
	c := tc.createFighter(map[string]any{"campaign_id": id})
	assert.Equal(t, "Tomb of Annihilation", c["campaign"].(map[string]any)["name"])

	page := tc.call(http.MethodPost, "/api/character/list/", map[string]any{"filter": map[string]any{"campaign": []string{id}}}, http.StatusOK)
	assert.EqualValues(t, 1, page["count"])

	updated := tc.call(http.MethodPatch, "/api/campaign/"+id+"/", map[string]any{"story": "The death curse."}, http.StatusOK)
	assert.Equal(t, "The death curse.", updated["story"])

	tc.call(http.MethodDelete, "/api/campaign/"+id+"/", nil, http.StatusNoContent)
	tc.call(http.MethodGet, "/api/character/"+c["id"].(string)+"/", nil, http.StatusNotFound)
}

func TestDice(t *testing.T) {
	tc := newAPITestCase(t)

	tc.roller.Queue(5, 1, 6, 3)
	r := tc.call(http.MethodPost, "/api/dice/roll/", map[string]any{"faces": 6, "dice_count": 4, "drop_lowest": 1, "modifier": 2}, http.StatusOK)
	assert.EqualValues(t, 16, r["total"])
	assert.Equal(t, []any{3.0, 5.0, 6.0}, r["results"])

	tc.roller.Queue(17)
	r = tc.call(http.MethodPost, "/api/dice/roll/", map[string]any{"faces": 20}, http.StatusOK)
	assert.EqualValues(t, 17, r["total"])

	tc.roller.Queue(2, 4, 11)
	r = tc.call(http.MethodPost, "/api/dice/roll-multiple/", map[string]any{"dice": map[string]int{"20": 1, "4": 2}, "modifier": 1}, http.StatusOK)
	assert.EqualValues(t, 18, r["total"])

	body := tc.call(http.MethodPost, "/api/dice/roll/", map[string]any{"faces": 0}, http.StatusBadRequest)
	assert.Contains(t, body["errors"], "faces")
}

func TestMethodNotAllowed(t *testing.T) {
	tc := newAPITestCase(t)

	body := tc.call(http.MethodPut, "/api/campaign/list/", nil, http.StatusMethodNotAllowed)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"])
}
