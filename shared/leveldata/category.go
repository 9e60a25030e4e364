package leveldata

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/automoto/timespinner-map/shared/datfile"
)

// CategoryTag is the raw @Category discriminant of an object tile.
type CategoryTag uint8

const (
	CategoryNone CategoryTag = iota
	CategoryEvent
	CategoryEnemy
	CategoryItem
)

var categoryTagNames = [...]string{"None", "Event", "Enemy", "Item"}

var errUnknownCategory = errors.New("unknown object category")

func (t CategoryTag) String() string {
	if int(t) < len(categoryTagNames) {
		return categoryTagNames[t]
	}
	return fmt.Sprintf("CategoryTag(%d)", uint8(t))
}

// ParseCategoryTag decodes a @Category value. Tags are case-sensitive.
func ParseCategoryTag(s string) (CategoryTag, error) {
	for i, name := range categoryTagNames {
		if s == name {
			return CategoryTag(i), nil
		}
	}
	return 0, &datfile.SchemaError{Index: -1, Attr: "Category", Value: s, Err: errUnknownCategory}
}

func (t *CategoryTag) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := ParseCategoryTag(attr.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ErrUnknownObject matches every UnknownObjectError.
var ErrUnknownObject = errors.New("unknown enumeration member")

// UnknownObjectError reports an @ObjectID outside the enumeration named by its
// category.
type UnknownObjectError struct {
	Tag      CategoryTag
	ObjectID int
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("unknown %s object id %d", e.Tag, e.ObjectID)
}

func (e *UnknownObjectError) Is(target error) bool { return target == ErrUnknownObject }

// Category is the resolved gameplay meaning of an object tile: nothing, or
// exactly one event, enemy or item kind. The zero value is the None category.
type Category struct {
	tag  CategoryTag
	kind uint8
}

func EventCategory(k EventKind) Category { return Category{tag: CategoryEvent, kind: uint8(k)} }
func EnemyCategory(k EnemyKind) Category { return Category{tag: CategoryEnemy, kind: uint8(k)} }
func ItemCategory(k ItemKind) Category   { return Category{tag: CategoryItem, kind: uint8(k)} }

func (c Category) Tag() CategoryTag { return c.tag }

func (c Category) IsNone() bool { return c.tag == CategoryNone }

func (c Category) Event() (EventKind, bool) {
	return EventKind(c.kind), c.tag == CategoryEvent
}

func (c Category) Enemy() (EnemyKind, bool) {
	return EnemyKind(c.kind), c.tag == CategoryEnemy
}

func (c Category) Item() (ItemKind, bool) {
	return ItemKind(c.kind), c.tag == CategoryItem
}

// String returns "None" or the tag and member, e.g. "Enemy/LakeEel".
func (c Category) String() string {
	switch c.tag {
	case CategoryEvent:
		return "Event/" + EventKind(c.kind).String()
	case CategoryEnemy:
		return "Enemy/" + EnemyKind(c.kind).String()
	case CategoryItem:
		return "Item/" + ItemKind(c.kind).String()
	}
	return "None"
}

// ResolveCategory turns a raw (tag, object id) pair into a Category. The id is
// ignored for CategoryNone; otherwise it must be an ordinal of the tag's
// enumeration.
func ResolveCategory(tag CategoryTag, objectID int) (Category, error) {
	var count int
	switch tag {
	case CategoryNone:
		return Category{}, nil
	case CategoryEvent:
		count = EventKindCount
	case CategoryEnemy:
		count = EnemyKindCount
	case CategoryItem:
		count = ItemKindCount
	default:
		return Category{}, &datfile.SchemaError{Index: -1, Attr: "Category", Value: tag.String(), Err: errUnknownCategory}
	}

	if objectID < 0 || objectID >= count {
		return Category{}, &UnknownObjectError{Tag: tag, ObjectID: objectID}
	}
	return Category{tag: tag, kind: uint8(objectID)}, nil
}
