package buddy

import "time"

type Stage string

const (
	StageEgg   Stage = "egg"
	StageBaby  Stage = "baby"
	StageChild Stage = "child"
	StageTeen  Stage = "teen"
	StageAdult Stage = "adult"
)

func (s Stage) rank() int {
	switch s {
	case StageBaby:
		return 1
	case StageChild:
		return 2
	case StageTeen:
		return 3
	case StageAdult:
		return 4
	default:
		return 0
	}
}

func (s Stage) Valid() bool {
	switch s {
	case StageEgg, StageBaby, StageChild, StageTeen, StageAdult:
		return true
	default:
		return false
	}
}

type BuddyType string

const (
	BuddyTypeDefault BuddyType = "default"
	BuddyTypeCat     BuddyType = "cat"
	BuddyTypeDog     BuddyType = "dog"
	BuddyTypeBunny   BuddyType = "bunny"
	BuddyTypePanda   BuddyType = "panda"
)

func (t BuddyType) Valid() bool {
	switch t {
	case BuddyTypeDefault, BuddyTypeCat, BuddyTypeDog, BuddyTypeBunny, BuddyTypePanda:
		return true
	default:
		return false
	}
}

type Clothing string

const (
	ClothingNone    Clothing = "none"
	ClothingHat     Clothing = "hat"
	ClothingBow     Clothing = "bow"
	ClothingGlasses Clothing = "glasses"
	ClothingScarf   Clothing = "scarf"
	ClothingCrown   Clothing = "crown"
)

func (c Clothing) Valid() bool {
	switch c {
	case ClothingNone, ClothingHat, ClothingBow, ClothingGlasses, ClothingScarf, ClothingCrown:
		return true
	default:
		return false
	}
}

type Buddy struct {
	Name             string    `json:"name"`
	Level            int       `json:"level"`
	Experience       int       `json:"experience"`
	ExperienceToNext int       `json:"experienceToNext"`
	Happiness        int       `json:"happiness"`
	Health           int       `json:"health"`
	Stage            Stage     `json:"stage"`
	ColorHue         int       `json:"colorHue"`
	LastFed          time.Time `json:"lastFed"`
	LastPlayed       time.Time `json:"lastPlayed"`
	LastPetted       time.Time `json:"lastPetted"`
	CreatedAt        time.Time `json:"createdAt"`
	BuddyType        BuddyType `json:"buddyType"`
	Clothing         Clothing  `json:"clothing"`
	FeedCount        int       `json:"feedCount"`
	PlayCount        int       `json:"playCount"`
	PetCount         int       `json:"petCount"`
	EggPetCount      int       `json:"eggPetCount"`
}

type Streak struct {
	Current     int       `json:"current"`
	Longest     int       `json:"longest"`
	LastCheckin time.Time `json:"lastCheckin"`
	TotalDays   int       `json:"totalDays"`
}

// Adventure is the active timed sub-activity. A nil *Adventure means idle.
type Adventure struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	StartTime       time.Time `json:"startTime"`
	RewardXP        int       `json:"rewardXP"`
	Emoji           string    `json:"emoji"`
}

type AdventureDefinition struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	DurationMinutes   int    `json:"durationMinutes"`
	RewardXP          int    `json:"rewardXP"`
	Emoji             string `json:"emoji"`
	RequiredLevel     int    `json:"requiredLevel"`
	RequiredHappiness int    `json:"requiredHappiness"`
}

type ActionType string

const (
	ActionFeed              ActionType = "feed"
	ActionPlay              ActionType = "play"
	ActionPet               ActionType = "pet"
	ActionCheckIn           ActionType = "checkin"
	ActionStartAdventure    ActionType = "start_adventure"
	ActionCompleteAdventure ActionType = "complete_adventure"
	ActionRename            ActionType = "rename"
	ActionSetBuddyType      ActionType = "set_buddy_type"
	ActionSetClothing       ActionType = "set_clothing"
	ActionDecay             ActionType = "decay"
)

// Status reports how an action resolved. Only StatusOK mutates state.
type Status string

const (
	StatusOK                 Status = "ok"
	StatusNotYetEligible     Status = "not_yet_eligible"
	StatusRequirementsNotMet Status = "requirements_not_met"
	StatusStillInProgress    Status = "still_in_progress"
	StatusAdventureActive    Status = "adventure_active"
	StatusNoAdventure        Status = "no_adventure"
)

type DomainEvent struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventBuddyFed           = "buddy_fed"
	EventBuddyPlayed        = "buddy_played"
	EventBuddyPetted        = "buddy_petted"
	EventBuddyHatched       = "buddy_hatched"
	EventLevelUp            = "level_up"
	EventStageChanged       = "stage_changed"
	EventCheckedIn          = "checked_in"
	EventAdventureStarted   = "adventure_started"
	EventAdventureCompleted = "adventure_completed"
	EventDecayApplied       = "decay_applied"
	EventBuddyRenamed       = "buddy_renamed"
	EventBuddyTypeChanged   = "buddy_type_changed"
	EventClothingChanged    = "clothing_changed"
)
