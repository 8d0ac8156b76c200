package gamification

// Avatar is the cosmetic tier unlocked by a level.
type Avatar string

const (
	AvatarSeedling Avatar = "seedling"
	AvatarStudent  Avatar = "student"
	AvatarHero     Avatar = "hero"
	AvatarWizard   Avatar = "wizard"
	AvatarRocket   Avatar = "rocket"
	AvatarStar     Avatar = "star"
)

var avatarTiers = []Avatar{AvatarSeedling, AvatarStudent, AvatarHero, AvatarWizard, AvatarRocket, AvatarStar}

// AvatarForLevel returns the tier for level; every level past the last tier keeps it.
func AvatarForLevel(level int) Avatar {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(avatarTiers) {
		idx = len(avatarTiers) - 1
	}
	return avatarTiers[idx]
}
