package vassal

import "errors"

var (
	// ErrRealmNil is returned when a nil *core.Realm is passed.
	ErrRealmNil = errors.New("vassal: realm is nil")

	// ErrTreeCycle indicates a town was reached twice while walking the forest.
	ErrTreeCycle = errors.New("vassal: master relation contains a cycle")
)

// taxShare is the divisor of the cut a master takes from each vassal.
const taxShare = 10
