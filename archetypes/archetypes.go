package archetypes

import (
	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Room = newArchetype(
		tags.Room,
		components.Room,
		components.Object,
	)
	Camera = newArchetype(
		tags.View,
		components.Camera,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Map = newArchetype(
		components.Map,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Reload = newArchetype(
		components.Reload,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
