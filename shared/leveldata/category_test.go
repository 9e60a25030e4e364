package leveldata

import (
	"errors"
	"testing"

	"github.com/automoto/timespinner-map/shared/datfile"
)

func TestEnumerationCounts(t *testing.T) {
	if EventKindCount != 49 {
		t.Fatalf("expected 49 event kinds, got %d", EventKindCount)
	}
	if EnemyKindCount != 62 {
		t.Fatalf("expected 62 enemy kinds, got %d", EnemyKindCount)
	}
	if ItemKindCount != 8 {
		t.Fatalf("expected 8 item kinds, got %d", ItemKindCount)
	}
}

// The ordinals are the ObjectID values written by the game; these pin the
// ones most likely to shift if a member is inserted or removed.
func TestEnumerationOrdinals(t *testing.T) {
	events := []struct {
		kind EventKind
		want uint8
		name string
	}{
		{EventCheckpoint, 0, "Checkpoint"},
		{EventPlayerStart, 1, "PlayerStart"},
		{EventBossDoor, 6, "BossDoor"},
		{EventTransitionWarpEvent, 13, "TransitionWarpEvent"},
		{EventMerchantCrow, 22, "MerchantCrow"},
		{EventTreasureChest, 27, "TreasureChest"},
		{EventLantern, 31, "Lantern"},
		{EventGyrePortal, 43, "GyrePortal"},
		{EventEscortMissionManager, 48, "EscortMissionManager"},
	}
	for _, c := range events {
		if uint8(c.kind) != c.want || c.kind.String() != c.name {
			t.Errorf("event %s: expected ordinal %d, got %d (%s)", c.name, c.want, uint8(c.kind), c.kind)
		}
	}

	enemies := []struct {
		kind EnemyKind
		want uint8
		name string
	}{
		{EnemyCheveuxTank, 0, "CheveuxTank"},
		{EnemyCavesSlime, 7, "CavesSlime"},
		{EnemyCitySecurityGuard, 20, "CitySecurityGuard"},
		{EnemyLakeEel, 40, "LakeEel"},
		{EnemyBirdBoss, 48, "BirdBoss"},
		{EnemyNightmareBoss, 57, "NightmareBoss"},
		{EnemyCantoranBoss, 61, "CantoranBoss"},
	}
	for _, c := range enemies {
		if uint8(c.kind) != c.want || c.kind.String() != c.name {
			t.Errorf("enemy %s: expected ordinal %d, got %d (%s)", c.name, c.want, uint8(c.kind), c.kind)
		}
	}

	items := []string{"MaxHP", "MaxMP", "Orb1", "DoubleJump", "Dash", "WhiteSheep", "BlackSheep", "GemChest"}
	for i, name := range items {
		if got := ItemKind(i).String(); got != name {
			t.Errorf("item %d: expected %s, got %s", i, name, got)
		}
	}

	if got := EnemyKind(200).String(); got != "EnemyKind(200)" {
		t.Errorf("expected fallback name for unknown member, got %s", got)
	}
}

func TestResolveCategoryNoneIgnoresObjectID(t *testing.T) {
	for _, id := range []int{-1, 0, 45, 255, 100000} {
		c, err := ResolveCategory(CategoryNone, id)
		if err != nil {
			t.Fatalf("id %d: unexpected error %v", id, err)
		}
		if !c.IsNone() || c != (Category{}) {
			t.Fatalf("id %d: expected None, got %v", id, c)
		}
	}
}

func TestResolveCategoryRange(t *testing.T) {
	cases := []struct {
		tag   CategoryTag
		count int
	}{
		{CategoryEvent, EventKindCount},
		{CategoryEnemy, EnemyKindCount},
		{CategoryItem, ItemKindCount},
	}

	for _, c := range cases {
		t.Run(c.tag.String(), func(t *testing.T) {
			for id := 0; id < c.count; id++ {
				got, err := ResolveCategory(c.tag, id)
				if err != nil {
					t.Fatalf("id %d: unexpected error %v", id, err)
				}
				if got.Tag() != c.tag {
					t.Fatalf("id %d: expected tag %s, got %s", id, c.tag, got.Tag())
				}
				var ordinal int
				switch c.tag {
				case CategoryEvent:
					k, _ := got.Event()
					ordinal = int(k)
				case CategoryEnemy:
					k, _ := got.Enemy()
					ordinal = int(k)
				case CategoryItem:
					k, _ := got.Item()
					ordinal = int(k)
				}
				if ordinal != id {
					t.Fatalf("id %d: resolved to ordinal %d", id, ordinal)
				}
			}

			for _, id := range []int{-1, c.count, c.count + 1, 200} {
				_, err := ResolveCategory(c.tag, id)
				var ue *UnknownObjectError
				if !errors.As(err, &ue) || ue.Tag != c.tag || ue.ObjectID != id {
					t.Fatalf("id %d: expected UnknownObjectError, got %v", id, err)
				}
				if !errors.Is(err, ErrUnknownObject) {
					t.Fatalf("id %d: expected ErrUnknownObject match", id)
				}
			}
		})
	}
}

func TestCategoryAccessorsAreExclusive(t *testing.T) {
	c := EnemyCategory(EnemyZelBoss)
	if _, ok := c.Event(); ok {
		t.Fatalf("enemy category reported as event")
	}
	if _, ok := c.Item(); ok {
		t.Fatalf("enemy category reported as item")
	}
	if k, ok := c.Enemy(); !ok || k != EnemyZelBoss {
		t.Fatalf("expected ZelBoss, got %v", k)
	}
	if c.String() != "Enemy/ZelBoss" {
		t.Fatalf("unexpected string %q", c.String())
	}
	if EventCategory(EventTimeGate).String() != "Event/TimeGate" || ItemCategory(ItemDash).String() != "Item/Dash" {
		t.Fatalf("unexpected category strings")
	}
}

func TestParseCategoryTag(t *testing.T) {
	for i, name := range []string{"None", "Event", "Enemy", "Item"} {
		tag, err := ParseCategoryTag(name)
		if err != nil || tag != CategoryTag(i) {
			t.Fatalf("%s: expected %d, got %d (%v)", name, i, tag, err)
		}
	}
	for _, bad := range []string{"", "enemy", "Boss", "Items"} {
		if _, err := ParseCategoryTag(bad); !errors.Is(err, datfile.ErrSchema) {
			t.Fatalf("%q: expected schema error, got %v", bad, err)
		}
	}
}

func TestObjectTileToTile(t *testing.T) {
	arg := 9
	cases := []ObjectTile{
		{Tile: Tile{ID: 1, X: 2, Y: 3}},
		{Tile: Tile{ID: 511, X: 24, Y: 19, FlipX: true}, Category: ItemCategory(ItemOrb1)},
		{Tile: Tile{ID: 700, X: -1, Y: 0, FlipX: true, FlipY: true}, Category: EventCategory(EventElevator), Argument: &arg},
	}
	for _, obj := range cases {
		got := obj.ToTile()
		want := Tile{ID: obj.ID, X: obj.X, Y: obj.Y, FlipX: obj.FlipX, FlipY: obj.FlipY}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	}
}

func TestTileHasSprite(t *testing.T) {
	cases := map[int]bool{-1: false, 0: true, 511: true, 512: false, 1000: false}
	for id, want := range cases {
		if got := (Tile{ID: id}).HasSprite(); got != want {
			t.Fatalf("id %d: expected %v, got %v", id, want, got)
		}
	}
}
