package game

import (
	"fmt"
	"math/rand"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var idAdjectives = []string{
	"ancient", "arcane", "bold", "brave", "cursed", "daring", "eager", "elder",
	"fabled", "fearless", "fierce", "frozen", "gallant", "gilded", "glowing", "grim",
	"hidden", "hollow", "iron", "jolly", "legendary", "lone", "lucky", "mighty",
	"mystic", "nimble", "noble", "pixel", "quick", "radiant", "restless", "rogue",
	"royal", "rusty", "shadow", "silent", "silver", "sly", "stalwart", "swift",
	"tiny", "valiant", "wandering", "wild", "wise", "witty", "zealous",
}

var idNouns = []string{
	"alchemist", "archer", "bard", "basilisk", "beetle", "cleric", "dragon", "druid",
	"dwarf", "elf", "falcon", "fox", "gargoyle", "ghost", "giant", "goblin", "golem",
	"griffin", "hero", "hydra", "imp", "knight", "kobold", "lich", "mage", "mimic",
	"minotaur", "monk", "ogre", "paladin", "phoenix", "pirate", "ranger", "rogue",
	"scout", "skeleton", "slime", "sorcerer", "sphinx", "squire", "titan", "troll",
	"unicorn", "valkyrie", "warlock", "wizard", "wraith", "wyvern", "yeti",
}

var idRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// generateID generates a readable game ID like "brave_knight_V1StGXR8"
func generateID() (string, error) {
	adjective := idAdjectives[idRand.Intn(len(idAdjectives))]
	noun := idNouns[idRand.Intn(len(idNouns))]

	suffix, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}

	return fmt.Sprintf("%s_%s_%s", adjective, noun, suffix), nil
}
