package buddy

import "time"

const (
	MaxStat = 100

	DefaultName             = "Buddy"
	DefaultLevel            = 1
	DefaultExperienceToNext = 100
	DefaultHappiness        = 75
	DefaultHealth           = 100
	HueRange                = 360
	MaxNameRunes            = 40

	ExperienceGrowthNumerator   = 3
	ExperienceGrowthDenominator = 2

	LevelBaby  = 3
	LevelChild = 8
	LevelTeen  = 15
	LevelAdult = 25

	EggPetsToHatch = 3

	FeedHappinessGain = 15
	FeedHealthGain    = 10
	FeedXP            = 20

	PlayHappinessGain = 25
	PlayHealthGain    = 5
	PlayXP            = 30

	PetHappinessGain = 10
	PetXP            = 15

	CheckInXP = 50

	AdventureHappinessGain = 20

	DecayHealthStep     = 1
	DecayHealthFloor    = 20
	DecayHappinessStep  = 1
	DecayHappinessFloor = 10
)

const (
	FeedCooldown = time.Hour
	PlayCooldown = 30 * time.Minute
	PetCooldown  = 15 * time.Minute

	CheckInInterval = 24 * time.Hour

	HungerDecayAfter  = 4 * time.Hour
	BoredomDecayAfter = 2 * time.Hour

	DefaultDecayInterval = time.Minute
)

// Fresh buddies start with every care action already off cooldown.
const (
	initialFedBackdate    = 4000 * time.Second
	initialPlayedBackdate = 2000 * time.Second
	initialPettedBackdate = 1000 * time.Second
)

var ActionCooldownDurations = map[ActionType]time.Duration{
	ActionFeed: FeedCooldown,
	ActionPlay: PlayCooldown,
	ActionPet:  PetCooldown,
}
