package physics

// Group is a collision filter bit set. A body belongs to one group and
// collides with the groups in its mask.
type Group uint32

const (
	GroupObjects Group = 1
	GroupBullets Group = 2
	GroupPlayer  Group = 4
)

// Masks applied at body-creation time. Bullets never hit the player and the
// player only stands on objects.
const (
	MaskObjects = GroupObjects | GroupBullets | GroupPlayer
	MaskBullets = GroupObjects | GroupBullets
	MaskPlayer  = GroupObjects
)

// CanCollide reports whether two bodies pass each other's filters.
func CanCollide(aGroup, aMask, bGroup, bMask Group) bool {
	return aGroup&bMask != 0 && bGroup&aMask != 0
}
