package model

// Slot identifies an equipment slot.
type Slot int32

const (
	SlotHead Slot = iota
	SlotCape
	SlotAmulet
	SlotWeapon
	SlotBody
	SlotShield
	SlotLegs
	SlotGloves
	SlotBoots
	SlotRing
	SlotAmmo

	SlotCount
)

// String returns a human-readable slot name.
func (s Slot) String() string {
	switch s {
	case SlotHead:
		return "HEAD"
	case SlotCape:
		return "CAPE"
	case SlotAmulet:
		return "AMULET"
	case SlotWeapon:
		return "WEAPON"
	case SlotBody:
		return "BODY"
	case SlotShield:
		return "SHIELD"
	case SlotLegs:
		return "LEGS"
	case SlotGloves:
		return "GLOVES"
	case SlotBoots:
		return "BOOTS"
	case SlotRing:
		return "RING"
	case SlotAmmo:
		return "AMMO"
	default:
		return "UNKNOWN"
	}
}

// Item is an equippable item template. Templates are immutable shared
// data; combat code only ever reads them.
type Item struct {
	Name         string
	Slot         Slot
	Bonuses      CombatBonuses
	Requirements map[SkillType]int32
	Weight       float64

	// WeaponStyle is the bonus axis this weapon attacks along
	// (stab/slash/crush for melee weapons). Ignored for non-weapons.
	WeaponStyle BonusStyle
}
