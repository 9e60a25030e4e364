package leveldata

import "fmt"

// EventKind identifies an event object. Ordinals are the ObjectID values used
// by the level files and must not be reordered.
type EventKind uint8

const (
	EventCheckpoint EventKind = iota
	EventPlayerStart
	EventWestTeleport
	EventNorthTeleport
	EventEastTeleport
	EventSouthTeleport
	EventBossDoor
	EventDummyUIEvent
	EventJournalEntry
	EventMovingPlatform
	EventBlastDoor
	EventCirclePlatform
	EventMiniBossDoor
	EventTransitionWarpEvent
	EventConveyorBelt
	EventPetrifiedVine
	EventWaterFillerNW
	EventWaterFillerSE
	EventElevator
	EventDonutTile
	EventBreakableWall
	EventJunkCrusher
	EventMerchantCrow
	EventSelen
	EventTheTimespinner
	EventOrbPedestal
	EventTimeGate
	EventTreasureChest
	EventDoorway
	EventKeycardDoor
	EventTransition
	EventLantern
	EventForestNPCs
	EventCurtainDrawbridge
	EventTimespinnerWheelItem
	EventLevelEffect
	EventEnvironmentPrefab
	EventAreaTitleBlocker
	EventMapTerminal
	EventBackerPortrait
	EventCutscene
	EventMusicFader
	EventMusicPlayer
	EventGyrePortal
	EventGyreSpawner
	EventLostItem
	EventTutorial
	EventRareEnemySpawner
	EventEscortMissionManager
)

// EnemyKind identifies an enemy object. Ordinals are the ObjectID values used
// by the level files and must not be reordered.
type EnemyKind uint8

const (
	EnemyCheveuxTank EnemyKind = iota
	EnemyBlueCheveux
	EnemyRedCheveux
	EnemyFlyingCheveux
	EnemyKickstarterFoe
	EnemyTempleFoe
	EnemyCursedAnemone
	EnemyCavesSlime
	EnemyFortressEngineer
	EnemyJunkSpawner
	EnemyCavesCopperWyvern
	EnemyCavesSiren
	EnemyKeepDemon
	EnemyCastleShieldKnight
	EnemyCastleArcher
	EnemyWormFlower
	EnemyWormFlowerWalker
	EnemyCeilingStar
	EnemyFleshSpider
	EnemyDiscStatue
	EnemyCitySecurityGuard
	EnemyCheveuxTower
	EnemyForestBabyCheveux
	EnemyForestMoth
	EnemyForestPlantBat
	EnemyForestRodent
	EnemyForestWormFlower
	EnemyCavesMushroomTower
	EnemyCavesSporeVine
	EnemyCavesSnail
	EnemyCastleLargeSoldier
	EnemyCastleEngineer
	EnemyKeepWarCheveux
	EnemyKeepLanceKnight
	EnemyKeepAristocrat
	EnemyTowerPlasmaPod
	EnemyTowerRoyalGuard
	EnemyLakeBirdEgg
	EnemyLakeAnemone
	EnemyLakeCheveux
	EnemyLakeEel
	EnemyLakeFly
	EnemyFortressKnight
	EnemyFortressGunner
	EnemyLabTurret
	EnemyLabChild
	EnemyLabAdult
	EnemyFortressLargeSoldier
	EnemyBirdBoss
	EnemyRoboKittyBoss
	EnemyVarndagrothBoss
	EnemyAelanaBoss
	EnemyIncubusBoss
	EnemyMawBoss
	EnemyShapeshiftBoss
	EnemyEmperorBoss
	EnemySandmanBoss
	EnemyNightmareBoss
	EnemyRavenBoss
	EnemyXarionBoss
	EnemyZelBoss
	EnemyCantoranBoss
)

// ItemKind identifies an item object. Ordinals are the ObjectID values used
// by the level files and must not be reordered.
type ItemKind uint8

const (
	ItemMaxHP ItemKind = iota
	ItemMaxMP
	ItemOrb1
	ItemDoubleJump
	ItemDash
	ItemWhiteSheep
	ItemBlackSheep
	ItemGemChest
)

// Member counts of the object enumerations.
const (
	EventKindCount = len(eventKindNames)
	EnemyKindCount = len(enemyKindNames)
	ItemKindCount  = len(itemKindNames)
)

var eventKindNames = [...]string{
	"Checkpoint",
	"PlayerStart",
	"WestTeleport",
	"NorthTeleport",
	"EastTeleport",
	"SouthTeleport",
	"BossDoor",
	"DummyUIEvent",
	"JournalEntry",
	"MovingPlatform",
	"BlastDoor",
	"CirclePlatform",
	"MiniBossDoor",
	"TransitionWarpEvent",
	"ConveyorBelt",
	"PetrifiedVine",
	"WaterFillerNW",
	"WaterFillerSE",
	"Elevator",
	"DonutTile",
	"BreakableWall",
	"JunkCrusher",
	"MerchantCrow",
	"Selen",
	"TheTimespinner",
	"OrbPedestal",
	"TimeGate",
	"TreasureChest",
	"Doorway",
	"KeycardDoor",
	"Transition",
	"Lantern",
	"ForestNPCs",
	"CurtainDrawbridge",
	"TimespinnerWheelItem",
	"LevelEffect",
	"EnvironmentPrefab",
	"AreaTitleBlocker",
	"MapTerminal",
	"BackerPortrait",
	"Cutscene",
	"MusicFader",
	"MusicPlayer",
	"GyrePortal",
	"GyreSpawner",
	"LostItem",
	"Tutorial",
	"RareEnemySpawner",
	"EscortMissionManager",
}

var enemyKindNames = [...]string{
	"CheveuxTank",
	"BlueCheveux",
	"RedCheveux",
	"FlyingCheveux",
	"KickstarterFoe",
	"TempleFoe",
	"CursedAnemone",
	"CavesSlime",
	"FortressEngineer",
	"JunkSpawner",
	"CavesCopperWyvern",
	"CavesSiren",
	"KeepDemon",
	"CastleShieldKnight",
	"CastleArcher",
	"WormFlower",
	"WormFlowerWalker",
	"CeilingStar",
	"FleshSpider",
	"DiscStatue",
	"CitySecurityGuard",
	"CheveuxTower",
	"ForestBabyCheveux",
	"ForestMoth",
	"ForestPlantBat",
	"ForestRodent",
	"ForestWormFlower",
	"CavesMushroomTower",
	"CavesSporeVine",
	"CavesSnail",
	"CastleLargeSoldier",
	"CastleEngineer",
	"KeepWarCheveux",
	"KeepLanceKnight",
	"KeepAristocrat",
	"TowerPlasmaPod",
	"TowerRoyalGuard",
	"LakeBirdEgg",
	"LakeAnemone",
	"LakeCheveux",
	"LakeEel",
	"LakeFly",
	"FortressKnight",
	"FortressGunner",
	"LabTurret",
	"LabChild",
	"LabAdult",
	"FortressLargeSoldier",
	"BirdBoss",
	"RoboKittyBoss",
	"VarndagrothBoss",
	"AelanaBoss",
	"IncubusBoss",
	"MawBoss",
	"ShapeshiftBoss",
	"EmperorBoss",
	"SandmanBoss",
	"NightmareBoss",
	"RavenBoss",
	"XarionBoss",
	"ZelBoss",
	"CantoranBoss",
}

var itemKindNames = [...]string{
	"MaxHP",
	"MaxMP",
	"Orb1",
	"DoubleJump",
	"Dash",
	"WhiteSheep",
	"BlackSheep",
	"GemChest",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

func (k EnemyKind) String() string {
	if int(k) < len(enemyKindNames) {
		return enemyKindNames[k]
	}
	return fmt.Sprintf("EnemyKind(%d)", uint8(k))
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return fmt.Sprintf("ItemKind(%d)", uint8(k))
}
